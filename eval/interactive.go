package eval

import "eva/parser"

// InteractiveContext evaluates successive inputs against the same global
// environment, e.g. for a REPL.
type InteractiveContext struct {
	Filename string
	interp   *Interpreter
}

func NewInteractiveContext(opts Options) *InteractiveContext {
	return &InteractiveContext{
		Filename: "<stdin>",
		interp:   New(opts),
	}
}

func (ic *InteractiveContext) Interpreter() *Interpreter { return ic.interp }

func (ic *InteractiveContext) Inspect(v Value) string { return Inspect(v) }

// Run parses input and evaluates every top-level expression in the global
// environment, returning the last value. Syntax errors are all reported;
// evaluation stops at the first runtime error.
func (ic *InteractiveContext) Run(input string) (Value, []error) {
	program, errs := parser.Parse(ic.Filename, input)
	if len(errs) != 0 {
		return nil, errs
	}
	rv, err := ic.interp.EvalProgram(program, nil)
	if err != nil {
		return nil, []error{err}
	}
	return rv, nil
}
