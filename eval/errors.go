package eval

import (
	"eva/parser"
	"fmt"
)

// UndefinedVariableError is returned when a name cannot be resolved
// anywhere on the environment chain. Op is "lookup" or "assign"; the
// message is the same for both.
type UndefinedVariableError struct {
	Name string
	Op   string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %s is not defined", e.Name)
}

// UnimplementedExpressionError is returned for expressions that do not
// match any form, e.g. an empty list or a keyword form of the wrong shape.
type UnimplementedExpressionError struct {
	Expr parser.Node
}

func (e *UnimplementedExpressionError) Error() string {
	tok := e.Expr.Tok()
	if tok.Line == 0 {
		return fmt.Sprintf("unimplemented expression: %s", e.Expr)
	}
	return fmt.Sprintf("%d:%d: unimplemented expression: %s", tok.Line, tok.Column, e.Expr)
}

type NotCallableError struct {
	Value Value
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("%s is not callable", Inspect(e.Value))
}

type TypeError struct {
	Op  string
	Msg string
}

func (e *TypeError) Error() string { return fmt.Sprintf("%s: %s", e.Op, e.Msg) }

// StackOverflowError is returned instead of pushing a frame that would
// take the call stack past the interpreter's maximum depth.
type StackOverflowError struct {
	Depth int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("maximum call stack depth exceeded (%d)", e.Depth)
}

// ImportError wraps a failure to load or parse a module.
type ImportError struct {
	Module string
	Err    error
}

func (e *ImportError) Error() string { return fmt.Sprintf("import %s: %s", e.Module, e.Err) }
func (e *ImportError) Unwrap() error { return e.Err }
