// Package loader resolves module names given to `import` into source text.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultDir = "modules"
	DefaultExt = ".eva"
)

// FileLoader reads modules from <Dir>/<name><Ext>.
type FileLoader struct {
	Dir string // defaults to DefaultDir
	Ext string // defaults to DefaultExt
}

func (l FileLoader) Path(name string) string {
	dir, ext := l.Dir, l.Ext
	if dir == "" {
		dir = DefaultDir
	}
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(dir, name+ext)
}

func (l FileLoader) Load(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid module name %q", name)
	}
	src, err := os.ReadFile(l.Path(name))
	if err != nil {
		return "", err
	}
	return string(src), nil
}

// MapLoader serves modules from memory, keyed by name.
type MapLoader map[string]string

func (m MapLoader) Load(name string) (string, error) {
	src, ok := m[name]
	if !ok {
		return "", fmt.Errorf("module %q not found", name)
	}
	return src, nil
}
