package loader_test

import (
	"eva/loader"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	src := "(def abs (x) (if (< x 0) (- x) x))"
	if err := os.WriteFile(filepath.Join(dir, "Math.eva"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	l := loader.FileLoader{Dir: dir}
	got, err := l.Load("Math")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != src {
		t.Errorf("expected=%q, got=%q", src, got)
	}
	if _, err := l.Load("Missing"); err == nil {
		t.Errorf("expected an error for a missing module")
	}
	for _, name := range []string{"", "../Math", "a/b", ".hidden"} {
		if _, err := l.Load(name); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestFileLoaderDefaults(t *testing.T) {
	got := loader.FileLoader{}.Path("Math")
	if got != filepath.Join("modules", "Math.eva") {
		t.Errorf("unexpected default path %q", got)
	}
}

func TestMapLoader(t *testing.T) {
	l := loader.MapLoader{"Util": "(var x 1)"}
	if src, err := l.Load("Util"); err != nil || src != "(var x 1)" {
		t.Errorf("unexpected result %q, %v", src, err)
	}
	if _, err := l.Load("Nope"); err == nil {
		t.Errorf("expected an error")
	}
}
