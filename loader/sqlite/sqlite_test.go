package sqlite_test

import (
	"eva/eval"
	"eva/loader/sqlite"
	"eva/parser"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoader(t *testing.T) {
	l, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %s", err)
	}
	defer l.Close()

	if err := l.Store("Math", "(var pi 3)"); err != nil {
		t.Fatalf("store: %s", err)
	}
	if err := l.Store("Math", "(var pi 3.14)"); err != nil {
		t.Fatalf("store: %s", err)
	}
	if err := l.Store("Alpha", "(var a 1)"); err != nil {
		t.Fatalf("store: %s", err)
	}
	src, err := l.Load("Math")
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if src != "(var pi 3.14)" {
		t.Errorf("expected the replaced source, got=%q", src)
	}
	if _, err := l.Load("Missing"); err == nil {
		t.Errorf("expected an error for a missing module")
	}
	names, err := l.Names()
	if err != nil {
		t.Fatalf("names: %s", err)
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Math"}) {
		t.Errorf("unexpected names %v", names)
	}
}

func TestLoaderPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.db")
	l, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open: %s", err)
	}
	if err := l.Store("Util", "(var x 1)"); err != nil {
		t.Fatalf("store: %s", err)
	}
	l.Close()

	l, err = sqlite.Open(path)
	if err != nil {
		t.Fatalf("reopen: %s", err)
	}
	defer l.Close()
	if src, err := l.Load("Util"); err != nil || src != "(var x 1)" {
		t.Errorf("unexpected result %q, %v", src, err)
	}
}

func TestImportFromDatabase(t *testing.T) {
	l, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %s", err)
	}
	defer l.Close()
	if err := l.Store("Geometry", "(def area (w h) (* w h)) (var unit 1)"); err != nil {
		t.Fatalf("store: %s", err)
	}

	in := eval.New(eval.Options{Loader: l})
	program, errs := parser.Parse("<test>", "(import Geometry) ((prop Geometry area) 3 4)")
	if len(errs) != 0 {
		t.Fatalf("parse: %v", errs)
	}
	v, err := in.EvalProgram(program, nil)
	if err != nil {
		t.Fatalf("eval: %s", err)
	}
	if v != eval.Number(12) {
		t.Errorf("expected 12, got=%s", eval.Inspect(v))
	}
}
