package parser

import "eva/lexer"

type Parser struct {
	filename string
	tokens   []lexer.Token
	Errors   []ParserError
	curr     int // how many we have consumed.
	depth    int // how many lists are currently open.
}

// ====
// init
// ====

func New(fn string, tokens []lexer.Token) *Parser {
	return &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []ParserError{},
		curr:     0,
	}
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// ===========
// entry point
// ===========

// program    → expression*
// expression → NUMBER | STRING | SYMBOL | list
// list       → "(" expression* ")"

func (p *Parser) Parse() *Program {
	program := &Program{Filename: p.filename, Exprs: []Node{}}
	for !p.isAtEnd() {
		if expr := p.topLevel(); expr != nil {
			program.Exprs = append(program.Exprs, expr)
		}
	}
	return program
}

func (p *Parser) topLevel() (expr Node) {
	defer func() {
		// Every top-level expression is a recovery point: on error we
		// skip to the end of the enclosing form and keep going.
		if rv := recover(); rv != nil {
			if _, ok := rv.(ParserError); ok {
				p.synchronize()
				expr = nil
				return
			}
			panic(rv)
		}
	}()
	if p.check(lexer.RIGHT_PAREN) {
		panic(p.error(p.consume(), "unexpected )"))
	}
	return p.expression()
}

func (p *Parser) expression() Node {
	tok := p.consume()
	switch tok.Type {
	case lexer.NUMBER:
		return &Number{Token: tok, Value: tok.Literal.(float64)}
	case lexer.STRING:
		return &String{Token: tok, Value: tok.Literal.(string)}
	case lexer.SYMBOL:
		return &Symbol{Token: tok, Name: tok.Lexeme}
	case lexer.LEFT_PAREN:
		return p.list(tok)
	}
	panic(p.error(tok, "unexpected %s", tok.Type))
}

func (p *Parser) list(open lexer.Token) Node {
	p.depth++
	items := []Node{}
	for !p.isAtEnd() && !p.check(lexer.RIGHT_PAREN) {
		items = append(items, p.expression())
	}
	if !p.check(lexer.RIGHT_PAREN) {
		panic(p.error(open, "unmatched ("))
	}
	p.consume()
	p.depth--
	return &List{Token: open, Items: items}
}

// Parse lexes and parses source, returning every lexer or parser
// error encountered.
func Parse(filename, source string) (*Program, []error) {
	l := lexer.New(filename, source)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		errs := make([]error, len(l.Errors))
		for i, err := range l.Errors {
			errs[i] = err
		}
		return nil, errs
	}
	p := New(filename, l.Tokens)
	program := p.Parse()
	if len(p.Errors) != 0 {
		errs := make([]error, len(p.Errors))
		for i, err := range p.Errors {
			errs[i] = err
		}
		return nil, errs
	}
	return program, nil
}

// ParseExpr parses source containing exactly one expression.
func ParseExpr(source string) (Node, error) {
	program, errs := Parse("<expr>", source)
	if len(errs) != 0 {
		return nil, errs[0]
	}
	if len(program.Exprs) != 1 {
		return nil, ParserError{
			Filename: "<expr>",
			Message:  "expected exactly one expression",
		}
	}
	return program.Exprs[0], nil
}
