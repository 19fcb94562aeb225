package eval

import (
	"errors"
	"testing"
)

func TestEnvironmentDefineLookup(t *testing.T) {
	env := NewEnvironment(GLOBAL, nil)
	if v := env.Define("foo", Number(5)); v != Number(5) {
		t.Errorf("expected Define to return the value, got=%#v", v)
	}
	v, err := env.Lookup("foo")
	if err != nil || v != Number(5) {
		t.Errorf("expected=5, got=%#v (%v)", v, err)
	}
	env.Define("foo", Number(18))
	if v, _ := env.Lookup("foo"); v != Number(18) {
		t.Errorf("expected last write to win, got=%#v", v)
	}
}

func TestEnvironmentChain(t *testing.T) {
	parent := NewEnvironment(GLOBAL, nil)
	parent.Define("x", Number(10))
	child := NewEnvironment(BLOCK, parent)

	if v, err := child.Lookup("x"); err != nil || v != Number(10) {
		t.Errorf("expected lookup through parent, got=%#v (%v)", v, err)
	}

	if _, err := child.Assign("x", Number(50)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if child.Has("x") {
		t.Errorf("assign must not create a binding in the child")
	}
	if v, _ := parent.Lookup("x"); v != Number(50) {
		t.Errorf("expected parent binding to be updated, got=%#v", v)
	}

	// shadowing
	child.Define("x", Number(1))
	if v, _ := child.Lookup("x"); v != Number(1) {
		t.Errorf("expected shadowed value, got=%#v", v)
	}
	if v, _ := parent.Lookup("x"); v != Number(50) {
		t.Errorf("outer binding changed by define, got=%#v", v)
	}
	child.Assign("x", Number(2))
	if v, _ := parent.Lookup("x"); v != Number(50) {
		t.Errorf("assign should hit the innermost owner, outer=%#v", v)
	}
	if child.Parent() != parent || child.Kind() != BLOCK {
		t.Errorf("unexpected parent/kind")
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	parent := NewEnvironment(GLOBAL, nil)
	env := NewEnvironment(BLOCK, parent)
	tests := []struct {
		op  string
		run func() error
	}{
		{"lookup", func() error { _, err := env.Lookup("foo"); return err }},
		{"assign", func() error { _, err := env.Assign("foo", Number(10)); return err }},
	}
	for i, test := range tests {
		err := test.run()
		var undef *UndefinedVariableError
		if !errors.As(err, &undef) {
			t.Errorf("tests[%d]: expected UndefinedVariableError, got=%v", i, err)
			continue
		}
		if undef.Name != "foo" || undef.Op != test.op {
			t.Errorf("tests[%d]: unexpected error %#v", i, undef)
		}
		if err.Error() != "variable foo is not defined" {
			t.Errorf("tests[%d]: unexpected message %q", i, err.Error())
		}
	}
	if len(env.Names()) != 0 || len(parent.Names()) != 0 {
		t.Errorf("failed resolution must not create bindings")
	}
}

func TestEnvironmentNames(t *testing.T) {
	env := NewEnvironment(MODULE, nil)
	env.Define("b", NULL)
	env.Define("a", NULL)
	names := env.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted names, got=%v", names)
	}
}
