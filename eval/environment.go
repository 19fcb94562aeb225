package eval

import "sort"

//go:generate stringer -type=Kind

// Kind records what created an environment. Every scope in the language
// is an *Environment; the kind only affects how it is displayed.
type Kind uint8

const (
	_ = Kind(iota)
	GLOBAL
	BLOCK
	ACTIVATION
	CLASS
	INSTANCE
	MODULE
)

// Environment is a scope: a record of bindings plus a parent link that is
// fixed at construction. Environments double as the object model: classes,
// instances and modules are all environments.
type Environment struct {
	kind  Kind
	name  string // class or module name, if any
	store map[string]Value
	outer *Environment
}

func NewEnvironment(kind Kind, outer *Environment) *Environment {
	return &Environment{
		kind:  kind,
		store: map[string]Value{},
		outer: outer,
	}
}

func newNamedEnvironment(kind Kind, name string, outer *Environment) *Environment {
	env := NewEnvironment(kind, outer)
	env.name = name
	return env
}

func (e *Environment) Type() ValueType { return VT_ENVIRONMENT }

func (e *Environment) Kind() Kind           { return e.kind }
func (e *Environment) Name() string         { return e.name }
func (e *Environment) Parent() *Environment { return e.outer }

// Define binds the given name in this environment's own record,
// shadowing any binding of the same name further up the chain.
func (e *Environment) Define(name string, value Value) Value {
	e.store[name] = value
	return value
}

// Assign overwrites the binding in the nearest environment that owns
// the name. It never creates a binding.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	owner := e.resolve(name)
	if owner == nil {
		return nil, &UndefinedVariableError{Name: name, Op: "assign"}
	}
	owner.store[name] = value
	return value, nil
}

// Lookup gets the given name from the environment, traversing
// the outer environments if it is not found.
func (e *Environment) Lookup(name string) (Value, error) {
	owner := e.resolve(name)
	if owner == nil {
		return nil, &UndefinedVariableError{Name: name, Op: "lookup"}
	}
	return owner.store[name], nil
}

// Has reports whether name is bound in this environment's own record.
func (e *Environment) Has(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Names returns the names bound in the own record, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve returns the closest environment owning name, or nil.
func (e *Environment) resolve(name string) *Environment {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			return env
		}
	}
	return nil
}
