package eval

import "eva/parser"

// =====
// Forms
// =====
//
// A list is classified into one of the form types below before it is
// evaluated. Keyword forms of the wrong shape are rejected here, so the
// evaluator and the transformer only ever see well-formed input.

type form interface{ form() }

type beginForm struct{ body []parser.Node }

type varForm struct {
	name  string
	value parser.Node
}

type setForm struct {
	name  string
	value parser.Node
}

// setPropForm is (set (prop object name) value).
type setPropForm struct {
	object parser.Node
	name   string
	value  parser.Node
}

// ifForm.alt is nil when the alternate was omitted.
type ifForm struct{ cond, then, alt parser.Node }

type whileForm struct{ cond, body parser.Node }

type lambdaForm struct {
	params []string
	body   parser.Node
}

type classForm struct {
	name   string
	parent parser.Node
	body   parser.Node
}

type newForm struct {
	class parser.Node
	args  []parser.Node
}

type propForm struct {
	object parser.Node
	name   string
}

type superForm struct{ class parser.Node }

type moduleForm struct {
	name string
	body parser.Node
}

type importForm struct{ name string }

// sugarForm is handed to the Transformer and the result re-evaluated.
type sugarForm struct{ list *parser.List }

type callForm struct {
	callee parser.Node
	args   []parser.Node
}

func (*beginForm) form()   {}
func (*varForm) form()     {}
func (*setForm) form()     {}
func (*setPropForm) form() {}
func (*ifForm) form()      {}
func (*whileForm) form()   {}
func (*lambdaForm) form()  {}
func (*classForm) form()   {}
func (*newForm) form()     {}
func (*propForm) form()    {}
func (*superForm) form()   {}
func (*moduleForm) form()  {}
func (*importForm) form()  {}
func (*sugarForm) form()   {}
func (*callForm) form()    {}

func classify(list *parser.List) (form, error) {
	bad := &UnimplementedExpressionError{Expr: list}
	items := list.Items
	if len(items) == 0 {
		return nil, bad
	}
	n := len(items)
	switch list.Head() {
	case "begin":
		return &beginForm{body: items[1:]}, nil
	case "var":
		name, ok := symbolName(items, 1)
		if n != 3 || !ok {
			return nil, bad
		}
		return &varForm{name: name, value: items[2]}, nil
	case "set":
		if n != 3 {
			return nil, bad
		}
		if name, ok := symbolName(items, 1); ok {
			return &setForm{name: name, value: items[2]}, nil
		}
		if target, ok := items[1].(*parser.List); ok && target.Head() == "prop" {
			prop, err := classify(target)
			if err != nil {
				return nil, err
			}
			p := prop.(*propForm)
			return &setPropForm{object: p.object, name: p.name, value: items[2]}, nil
		}
		return nil, bad
	case "if":
		if n == 3 {
			return &ifForm{cond: items[1], then: items[2]}, nil
		}
		if n == 4 {
			return &ifForm{cond: items[1], then: items[2], alt: items[3]}, nil
		}
		return nil, bad
	case "while":
		if n != 3 {
			return nil, bad
		}
		return &whileForm{cond: items[1], body: items[2]}, nil
	case "lambda":
		params, ok := paramNames(items, 1)
		if n != 3 || !ok {
			return nil, bad
		}
		return &lambdaForm{params: params, body: items[2]}, nil
	case "def":
		_, okName := symbolName(items, 1)
		_, okParams := paramNames(items, 2)
		if n != 4 || !okName || !okParams {
			return nil, bad
		}
		return &sugarForm{list}, nil
	case "switch":
		if n < 2 || !validSwitch(items[1:]) {
			return nil, bad
		}
		return &sugarForm{list}, nil
	case "for":
		if n != 5 {
			return nil, bad
		}
		return &sugarForm{list}, nil
	case "++", "--":
		if n != 2 {
			return nil, bad
		}
		return &sugarForm{list}, nil
	case "class":
		name, ok := symbolName(items, 1)
		if n != 4 || !ok {
			return nil, bad
		}
		return &classForm{name: name, parent: items[2], body: items[3]}, nil
	case "new":
		if n < 2 {
			return nil, bad
		}
		return &newForm{class: items[1], args: items[2:]}, nil
	case "prop":
		name, ok := symbolName(items, 2)
		if n != 3 || !ok {
			return nil, bad
		}
		return &propForm{object: items[1], name: name}, nil
	case "super":
		if n != 2 {
			return nil, bad
		}
		return &superForm{class: items[1]}, nil
	case "module":
		name, ok := symbolName(items, 1)
		if n != 3 || !ok {
			return nil, bad
		}
		return &moduleForm{name: name, body: items[2]}, nil
	case "import":
		name, ok := symbolName(items, 1)
		if n != 2 || !ok {
			return nil, bad
		}
		return &importForm{name: name}, nil
	}
	return &callForm{callee: items[0], args: items[1:]}, nil
}

// validSwitch checks that every clause is a (condition body) pair and
// that an else clause, if any, comes last.
func validSwitch(clauses []parser.Node) bool {
	for i, c := range clauses {
		clause, ok := c.(*parser.List)
		if !ok || clause.Len() != 2 {
			return false
		}
		if clause.Head() == "else" && i != len(clauses)-1 {
			return false
		}
	}
	return true
}

func symbolName(items []parser.Node, i int) (string, bool) {
	if i >= len(items) {
		return "", false
	}
	sym, ok := items[i].(*parser.Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}

func paramNames(items []parser.Node, i int) ([]string, bool) {
	if i >= len(items) {
		return nil, false
	}
	list, ok := items[i].(*parser.List)
	if !ok {
		return nil, false
	}
	params := make([]string, len(list.Items))
	for j := range list.Items {
		name, ok := symbolName(list.Items, j)
		if !ok {
			return nil, false
		}
		params[j] = name
	}
	return params, true
}

// isName reports whether s is a bindable name: a letter-led run of
// letters, digits and underscores, or a run of operator characters.
func isName(s string) bool {
	if s == "" {
		return false
	}
	if isOperatorChar(rune(s[0])) {
		for _, ch := range s {
			if !isOperatorChar(ch) {
				return false
			}
		}
		return true
	}
	for i, ch := range s {
		switch {
		case ch == '_', 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z':
		case '0' <= ch && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isOperatorChar(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!':
		return true
	}
	return false
}
