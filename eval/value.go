package eval

// This file contains the runtime representations of values.

import (
	"eva/parser"
	"math"
)

//go:generate stringer -type=ValueType

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_NULL
	VT_BOOLEAN
	VT_NUMBER
	VT_STRING
	VT_FUNCTION
	VT_BUILTIN
	VT_ENVIRONMENT
)

type Value interface {
	Type() ValueType
}

type Null struct{}
type Boolean bool
type Number float64
type String string

// Function is a closure: parameters and body plus the environment that
// was current when the lambda was evaluated.
type Function struct {
	Params []string
	Body   parser.Node
	Env    *Environment
}

type builtinFunc func(args []Value) (Value, error)

// Builtin represents a built-in function
type Builtin struct {
	name string
	call builtinFunc
}

func NewBuiltin(name string, call func(args []Value) (Value, error)) *Builtin {
	return &Builtin{name: name, call: call}
}

func (v *Builtin) Name() string                     { return v.name }
func (v *Builtin) Call(args []Value) (Value, error) { return v.call(args) }

func (v Null) Type() ValueType      { return VT_NULL }
func (v Boolean) Type() ValueType   { return VT_BOOLEAN }
func (v Number) Type() ValueType    { return VT_NUMBER }
func (v String) Type() ValueType    { return VT_STRING }
func (v *Function) Type() ValueType { return VT_FUNCTION }
func (v *Builtin) Type() ValueType  { return VT_BUILTIN }

// ==========
// Singletons
// ==========

var (
	NULL  = Value(Null{})
	TRUE  = Value(Boolean(true))
	FALSE = Value(Boolean(false))
)

func newBool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

// isTruthy follows the usual dynamic-language rules: null, false, zero,
// NaN and the empty string are falsy.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case nil, Null:
		return false
	case Boolean:
		return bool(v)
	case Number:
		return v != 0 && !math.IsNaN(float64(v))
	case String:
		return v != ""
	}
	return true
}
