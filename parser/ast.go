package parser

import "eva/lexer"

// Node is an immutable expression: a *Number, *String, *Symbol or *List.
// Evaluation never mutates nodes; rewrites always build new ones.
type Node interface {
	String() string
	Tok() lexer.Token
	node()
}

type Number struct {
	Token lexer.Token
	Value float64
}

// String is a quoted string literal. Token.Lexeme keeps the delimiting
// quotes, Value holds the unescaped content.
type String struct {
	Token lexer.Token
	Value string
}

type Symbol struct {
	Token lexer.Token
	Name  string
}

// List is a sequence form; Token is the opening parenthesis.
type List struct {
	Token lexer.Token
	Items []Node
}

// Program is the result of parsing a whole source file.
type Program struct {
	Filename string
	Exprs    []Node
}

func (node *Number) node() {}
func (node *String) node() {}
func (node *Symbol) node() {}
func (node *List) node()   {}

func (node *Number) Tok() lexer.Token { return node.Token }
func (node *String) Tok() lexer.Token { return node.Token }
func (node *Symbol) Tok() lexer.Token { return node.Token }
func (node *List) Tok() lexer.Token   { return node.Token }

// Head returns the name of the leading symbol of the list, or "" if the
// list is empty or does not start with a symbol.
func (node *List) Head() string {
	if len(node.Items) == 0 {
		return ""
	}
	if sym, ok := node.Items[0].(*Symbol); ok {
		return sym.Name
	}
	return ""
}

// Len returns the number of items in the list.
func (node *List) Len() int { return len(node.Items) }

// =================
// Synthetic nodes
// =================
//
// The constructors below build nodes that did not come from source text,
// e.g. the output of the desugaring pass. Their tokens carry no position.

func NewNumber(v float64) *Number {
	return &Number{Token: lexer.Token{Type: lexer.NUMBER, Literal: v, Lexeme: formatNumber(v)}, Value: v}
}

func NewString(s string) *String {
	lexeme := quote(s)
	return &String{Token: lexer.Token{Type: lexer.STRING, Literal: s, Lexeme: lexeme}, Value: s}
}

func NewSymbol(name string) *Symbol {
	return &Symbol{Token: lexer.Token{Type: lexer.SYMBOL, Literal: name, Lexeme: name}, Name: name}
}

func NewList(items ...Node) *List {
	return &List{Token: lexer.Token{Type: lexer.LEFT_PAREN, Lexeme: "("}, Items: items}
}

// NewListAt is like NewList, but reuses the position of tok.
func NewListAt(tok lexer.Token, items ...Node) *List {
	l := NewList(items...)
	l.Token.Line = tok.Line
	l.Token.Column = tok.Column
	return l
}
