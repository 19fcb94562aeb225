// Package transform implements the desugaring pass: it rewrites the
// convenience forms of the language (def, switch, for, ++ and --) into
// primitive forms the evaluator understands directly.
//
// Every rewrite is pure and builds fresh nodes; the input is never
// modified. The rewrites assume a well-formed input shape, which the
// evaluator checks before calling in.
package transform

import "eva/parser"

// ElseKeyword marks the catch-all clause of a switch.
const ElseKeyword = "else"

type Transformer struct{}

func New() *Transformer { return &Transformer{} }

// Desugar dispatches on the head of the list, returning the rewritten
// node and true, or nil and false if the list is not a sugar form.
func (t *Transformer) Desugar(list *parser.List) (parser.Node, bool) {
	switch list.Head() {
	case "def":
		return t.DefToLambda(list), true
	case "switch":
		return t.SwitchToIf(list), true
	case "for":
		return t.ForToWhile(list), true
	case "++":
		return t.IncToSet(list), true
	case "--":
		return t.DecToSet(list), true
	}
	return nil, false
}

// DefToLambda rewrites
//
//	(def name params body) → (var name (lambda params body))
func (t *Transformer) DefToLambda(def *parser.List) parser.Node {
	name, params, body := def.Items[1], def.Items[2], def.Items[3]
	return parser.NewListAt(def.Token,
		parser.NewSymbol("var"),
		name,
		parser.NewListAt(def.Token, parser.NewSymbol("lambda"), params, body),
	)
}

// SwitchToIf rewrites a switch into right-nested ifs:
//
//	(switch (c1 b1) (c2 b2) (else b3)) → (if c1 b1 (if c2 b2 b3))
//
// Case order is preserved. Without an else clause the innermost if
// has no alternate.
func (t *Transformer) SwitchToIf(sw *parser.List) parser.Node {
	cases := sw.Items[1:]
	var alternate parser.Node
	last := len(cases)
	if clause := cases[last-1].(*parser.List); isElse(clause) {
		alternate = clause.Items[1]
		last--
	}
	for i := last - 1; i >= 0; i-- {
		clause := cases[i].(*parser.List)
		items := []parser.Node{parser.NewSymbol("if"), clause.Items[0], clause.Items[1]}
		if alternate != nil {
			items = append(items, alternate)
		}
		alternate = parser.NewListAt(clause.Token, items...)
	}
	return alternate
}

// ForToWhile rewrites
//
//	(for init cond step body) → (begin init (while cond (begin body step)))
func (t *Transformer) ForToWhile(f *parser.List) parser.Node {
	init, cond, step, body := f.Items[1], f.Items[2], f.Items[3], f.Items[4]
	return parser.NewListAt(f.Token,
		parser.NewSymbol("begin"),
		init,
		parser.NewListAt(f.Token,
			parser.NewSymbol("while"),
			cond,
			parser.NewListAt(f.Token, parser.NewSymbol("begin"), body, step),
		),
	)
}

// IncToSet rewrites (++ x) → (set x (+ x 1)).
func (t *Transformer) IncToSet(inc *parser.List) parser.Node {
	return step(inc, "+")
}

// DecToSet rewrites (-- x) → (set x (- x 1)).
func (t *Transformer) DecToSet(dec *parser.List) parser.Node {
	return step(dec, "-")
}

func step(list *parser.List, op string) parser.Node {
	target := list.Items[1]
	return parser.NewListAt(list.Token,
		parser.NewSymbol("set"),
		target,
		parser.NewListAt(list.Token, parser.NewSymbol(op), target, parser.NewNumber(1)),
	)
}

func isElse(clause *parser.List) bool {
	sym, ok := clause.Items[0].(*parser.Symbol)
	return ok && sym.Name == ElseKeyword
}
