package parser

import (
	"bytes"
	"strconv"
	"strings"
)

func (node *Program) String() string {
	exprs := []string{}
	for _, expr := range node.Exprs {
		exprs = append(exprs, expr.String())
	}
	return strings.Join(exprs, "\n")
}

func (node *Number) String() string { return formatNumber(node.Value) }
func (node *String) String() string { return quote(node.Value) }
func (node *Symbol) String() string { return node.Name }

func (node *List) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, item := range node.Items {
		if i != 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(item.String())
	}
	buf.WriteString(")")
	return buf.String()
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// quote re-escapes s using the escapes understood by the lexer.
func quote(s string) string {
	var buf bytes.Buffer
	buf.WriteByte('"')
	for _, ch := range s {
		switch ch {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteRune(ch)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
