package parser

import (
	"eva/lexer"
	"fmt"
)

// Represents a parsing error. We use this internally to signal
// that we cannot continue parsing the current top-level expression.
type ParserError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (e ParserError) Error() string { return e.String() }
func (e ParserError) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Token.Line, e.Token.Column, e.Message)
}

func (p *Parser) error(tok lexer.Token, s string, args ...interface{}) ParserError {
	err := ParserError{
		Filename: p.filename,
		Token:    tok,
		Message:  fmt.Sprintf(s, args...),
	}
	p.Errors = append(p.Errors, err)
	return err
}

// synchronize synchronizes the parser by discarding tokens until the
// nesting depth drops back to zero, i.e. until the start of the next
// top-level expression. This means that cascading errors are discarded,
// and we still report as many errors as possible.
func (p *Parser) synchronize() {
	for !p.isAtEnd() && p.depth > 0 {
		switch p.consume().Type {
		case lexer.LEFT_PAREN:
			p.depth++
		case lexer.RIGHT_PAREN:
			p.depth--
		}
	}
	p.depth = 0
}
