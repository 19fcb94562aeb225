package eval

import (
	"bytes"
	"errors"
	"eva/parser"
	"testing"
)

func TestInteractiveContext(t *testing.T) {
	var out bytes.Buffer
	ic := NewInteractiveContext(Options{Globals: Globals{Stdout: &out}})
	steps := []struct {
		input    string
		expected string
	}{
		{"(var x 10)", "10"},
		{"(def double (n) (* n 2))", "[Function (n)"},
		{"(double x)", "20"},
		{`(+ "a" "b")`, `"ab"`},
		{"(print x) x", "10"},
		{"(class P null (def constructor (this) (set (prop this v) 1)))", "[Class P {constructor}]"},
		{"(new P)", "[Instance of P {v: 1}]"},
	}
	for i, step := range steps {
		v, errs := ic.Run(step.input)
		if len(errs) != 0 {
			t.Fatalf("steps[%d] (%q): unexpected errors %v", i, step.input, errs)
		}
		got := ic.Inspect(v)
		if len(got) < len(step.expected) || got[:len(step.expected)] != step.expected {
			t.Errorf("steps[%d] (%q): expected prefix=%q, got=%q", i, step.input, step.expected, got)
		}
	}
	if out.String() != "10\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestInteractiveContextErrors(t *testing.T) {
	ic := NewInteractiveContext(Options{Globals: Globals{Stdout: &bytes.Buffer{}}})

	_, errs := ic.Run("(foo (bar) ) )")
	var perr parser.ParserError
	if len(errs) == 0 || !errors.As(errs[0], &perr) {
		t.Errorf("expected a parser error, got=%v", errs)
	}

	_, errs = ic.Run("(var y 1) (undefined) (var z 2)")
	var undef *UndefinedVariableError
	if len(errs) != 1 || !errors.As(errs[0], &undef) {
		t.Fatalf("expected one UndefinedVariableError, got=%v", errs)
	}
	// evaluation stops at the first runtime error.
	g := ic.Interpreter().Global()
	if !g.Has("y") || g.Has("z") {
		t.Errorf("expected y but not z to be defined, got %v", g.Names())
	}
	if v, errs := ic.Run("y"); len(errs) != 0 || v != Number(1) {
		t.Errorf("expected the session to survive the error, got=%v %v", v, errs)
	}
}
