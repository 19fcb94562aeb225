package eval

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// VERSION is bound to `version` in the default global environment.
const VERSION = "0.1"

// Globals configures the default global environment.
type Globals struct {
	Version string    // defaults to VERSION
	Stdout  io.Writer // where print writes; defaults to os.Stdout
}

// NewGlobals builds a fresh global environment holding the default
// bindings: null, true, false, version, the arithmetic and comparison
// operators and print.
func NewGlobals(g Globals) *Environment {
	if g.Version == "" {
		g.Version = VERSION
	}
	if g.Stdout == nil {
		g.Stdout = os.Stdout
	}
	env := NewEnvironment(GLOBAL, nil)
	env.Define("null", NULL)
	env.Define("true", TRUE)
	env.Define("false", FALSE)
	env.Define("version", String(g.Version))
	for _, b := range []*Builtin{
		NewBuiltin("+", bi_add),
		NewBuiltin("-", bi_sub),
		NewBuiltin("*", arith("*", func(a, b float64) float64 { return a * b })),
		NewBuiltin("/", arith("/", func(a, b float64) float64 { return a / b })),
		NewBuiltin("%", arith("%", math.Mod)),
		NewBuiltin("=", bi_equal),
		NewBuiltin(">", compare(">", func(c int) bool { return c > 0 })),
		NewBuiltin(">=", compare(">=", func(c int) bool { return c >= 0 })),
		NewBuiltin("<", compare("<", func(c int) bool { return c < 0 })),
		NewBuiltin("<=", compare("<=", func(c int) bool { return c <= 0 })),
		NewBuiltin("print", printer(g.Stdout)),
	} {
		env.Define(b.name, b)
	}
	return env
}

// =================
// Builtin functions
// =================

// arg returns the i-th argument, or null if it was not supplied.
func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return NULL
}

func numbers(op string, a, b Value) (float64, float64, error) {
	x, ok1 := a.(Number)
	y, ok2 := b.(Number)
	if !ok1 || !ok2 {
		return 0, 0, &TypeError{
			Op:  op,
			Msg: fmt.Sprintf("expected numbers, got %s and %s", typeName(a), typeName(b)),
		}
	}
	return float64(x), float64(y), nil
}

func arith(op string, f func(a, b float64) float64) builtinFunc {
	return func(args []Value) (Value, error) {
		x, y, err := numbers(op, arg(args, 0), arg(args, 1))
		if err != nil {
			return nil, err
		}
		return Number(f(x, y)), nil
	}
}

// ---
//  +
// ---
func bi_add(args []Value) (Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	_, aStr := a.(String)
	_, bStr := b.(String)
	if aStr || bStr {
		return String(Display(a) + Display(b)), nil
	}
	x, y, err := numbers("+", a, b)
	if err != nil {
		return nil, err
	}
	return Number(x + y), nil
}

// ---
//  -
// ---
func bi_sub(args []Value) (Value, error) {
	if len(args) < 2 {
		x, ok := arg(args, 0).(Number)
		if !ok {
			return nil, &TypeError{Op: "-", Msg: fmt.Sprintf("expected a number, got %s", typeName(arg(args, 0)))}
		}
		return -x, nil
	}
	x, y, err := numbers("-", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return Number(x - y), nil
}

// ---
//  =
// ---
func bi_equal(args []Value) (Value, error) {
	return newBool(arg(args, 0) == arg(args, 1)), nil
}

func compare(op string, test func(c int) bool) builtinFunc {
	return func(args []Value) (Value, error) {
		a, b := arg(args, 0), arg(args, 1)
		if x, ok := a.(String); ok {
			if y, ok := b.(String); ok {
				return newBool(test(strings.Compare(string(x), string(y)))), nil
			}
		}
		x, y, err := numbers(op, a, b)
		if err != nil {
			return nil, err
		}
		switch {
		case x < y:
			return newBool(test(-1)), nil
		case x > y:
			return newBool(test(1)), nil
		case x == y:
			return newBool(test(0)), nil
		}
		// NaN is unordered.
		return FALSE, nil
	}
}

// -----
// print
// -----
func printer(out io.Writer) builtinFunc {
	return func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, v := range args {
			parts[i] = Display(v)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return NULL, nil
	}
}
