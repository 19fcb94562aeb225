package eval

// Implements the actual evaluator for the language.

import (
	"eva/loader"
	"eva/parser"
	"eva/transform"
	"fmt"
	"io"
)

// DefaultMaxDepth bounds the call stack when Options.MaxDepth is unset.
const DefaultMaxDepth = 10000

// Transformer rewrites sugar forms into primitive ones.
type Transformer interface {
	Desugar(list *parser.List) (parser.Node, bool)
}

// Loader returns the source text of the named module.
type Loader interface {
	Load(name string) (string, error)
}

// Options configures an Interpreter. Every field is optional.
type Options struct {
	Global      *Environment // if nil, NewGlobals(Globals) is used
	Globals     Globals
	Transformer Transformer // defaults to transform.New()
	Stack       *CallStack  // defaults to NewCallStack(Debug, DebugOutput)
	Loader      Loader      // defaults to loader.FileLoader{}
	MaxDepth    int         // defaults to DefaultMaxDepth
	Debug       bool
	DebugOutput io.Writer
}

type Interpreter struct {
	global      *Environment
	transformer Transformer
	stack       *CallStack
	loader      Loader
	maxDepth    int
}

func New(opts Options) *Interpreter {
	in := &Interpreter{
		global:      opts.Global,
		transformer: opts.Transformer,
		stack:       opts.Stack,
		loader:      opts.Loader,
		maxDepth:    opts.MaxDepth,
	}
	if in.global == nil {
		in.global = NewGlobals(opts.Globals)
	}
	if in.transformer == nil {
		in.transformer = transform.New()
	}
	if in.stack == nil {
		in.stack = NewCallStack(opts.Debug, opts.DebugOutput)
	}
	if in.loader == nil {
		in.loader = loader.FileLoader{}
	}
	if in.maxDepth <= 0 {
		in.maxDepth = DefaultMaxDepth
	}
	// the global frame is never popped.
	if in.stack.Depth() == 0 {
		in.stack.Push("global", in.global)
	}
	return in
}

func (in *Interpreter) Global() *Environment { return in.global }
func (in *Interpreter) Stack() *CallStack    { return in.stack }

// Eval evaluates node in env; a nil env means the global environment.
func (in *Interpreter) Eval(node parser.Node, env *Environment) (Value, error) {
	if env == nil {
		env = in.global
	}
	switch node := node.(type) {
	case *parser.Number:
		return Number(node.Value), nil
	case *parser.String:
		return String(node.Value), nil
	case *parser.Symbol:
		if !isName(node.Name) {
			return nil, &UnimplementedExpressionError{Expr: node}
		}
		return env.Lookup(node.Name)
	case *parser.List:
		f, err := classify(node)
		if err != nil {
			return nil, err
		}
		return in.evalForm(f, env)
	}
	return nil, &UnimplementedExpressionError{Expr: node}
}

// EvalProgram evaluates the top-level expressions of program directly in
// env (no block scope is introduced) and returns the last value.
func (in *Interpreter) EvalProgram(program *parser.Program, env *Environment) (Value, error) {
	if env == nil {
		env = in.global
	}
	return in.evalSequence(program.Exprs, env)
}

func (in *Interpreter) evalForm(f form, env *Environment) (Value, error) {
	switch f := f.(type) {
	case *beginForm:
		return in.evalSequence(f.body, NewEnvironment(BLOCK, env))
	case *varForm:
		value, err := in.Eval(f.value, env)
		if err != nil {
			return nil, err
		}
		return env.Define(f.name, value), nil
	case *setForm:
		value, err := in.Eval(f.value, env)
		if err != nil {
			return nil, err
		}
		return env.Assign(f.name, value)
	case *setPropForm:
		return in.evalSetProp(f, env)
	case *ifForm:
		return in.evalIf(f, env)
	case *whileForm:
		return in.evalWhile(f, env)
	case *sugarForm:
		node, ok := in.transformer.Desugar(f.list)
		if !ok {
			return nil, &UnimplementedExpressionError{Expr: f.list}
		}
		return in.Eval(node, env)
	case *lambdaForm:
		return &Function{Params: f.params, Body: f.body, Env: env}, nil
	case *classForm:
		return in.evalClass(f, env)
	case *newForm:
		return in.evalNew(f, env)
	case *propForm:
		object, err := in.evalObject("prop", f.object, env)
		if err != nil {
			return nil, err
		}
		return object.Lookup(f.name)
	case *superForm:
		class, err := in.evalObject("super", f.class, env)
		if err != nil {
			return nil, err
		}
		if class.outer == nil {
			return NULL, nil
		}
		return class.outer, nil
	case *moduleForm:
		return in.evalModule(f, env)
	case *importForm:
		return in.evalImport(f)
	case *callForm:
		return in.evalCall(f, env)
	}
	panic(fmt.Sprintf("unhandled form %#+v", f))
}

// ==========
// Sequencing
// ==========

func (in *Interpreter) evalSequence(exprs []parser.Node, env *Environment) (Value, error) {
	rv := NULL
	for _, expr := range exprs {
		v, err := in.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		rv = v
	}
	return rv, nil
}

// evalBody evaluates a function, class or module body directly in env:
// a begin body has its members evaluated in env without a further block.
func (in *Interpreter) evalBody(body parser.Node, env *Environment) (Value, error) {
	if list, ok := body.(*parser.List); ok && list.Head() == "begin" {
		return in.evalSequence(list.Items[1:], env)
	}
	return in.Eval(body, env)
}

// ============
// Control flow
// ============

func (in *Interpreter) evalIf(f *ifForm, env *Environment) (Value, error) {
	cond, err := in.Eval(f.cond, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.Eval(f.then, env)
	}
	if f.alt == nil {
		return NULL, nil
	}
	return in.Eval(f.alt, env)
}

func (in *Interpreter) evalWhile(f *whileForm, env *Environment) (Value, error) {
	rv := NULL
	for {
		cond, err := in.Eval(f.cond, env)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return rv, nil
		}
		rv, err = in.Eval(f.body, env)
		if err != nil {
			return nil, err
		}
	}
}

// =======
// Objects
// =======

// evalObject evaluates node and checks that it is an environment, i.e. a
// class, instance or module.
func (in *Interpreter) evalObject(op string, node parser.Node, env *Environment) (*Environment, error) {
	v, err := in.Eval(node, env)
	if err != nil {
		return nil, err
	}
	object, ok := v.(*Environment)
	if !ok {
		return nil, &TypeError{Op: op, Msg: fmt.Sprintf("%s is a %s, not an object", node, typeName(v))}
	}
	return object, nil
}

func (in *Interpreter) evalSetProp(f *setPropForm, env *Environment) (Value, error) {
	object, err := in.evalObject("set", f.object, env)
	if err != nil {
		return nil, err
	}
	value, err := in.Eval(f.value, env)
	if err != nil {
		return nil, err
	}
	return object.Define(f.name, value), nil
}

func (in *Interpreter) evalClass(f *classForm, env *Environment) (Value, error) {
	parent := env
	pv, err := in.Eval(f.parent, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(pv) {
		p, ok := pv.(*Environment)
		if !ok {
			return nil, &TypeError{Op: "class", Msg: fmt.Sprintf("parent of %s is a %s, not a class", f.name, typeName(pv))}
		}
		parent = p
	}
	class := newNamedEnvironment(CLASS, f.name, parent)
	if _, err := in.evalBody(f.body, class); err != nil {
		return nil, err
	}
	return env.Define(f.name, class), nil
}

func (in *Interpreter) evalNew(f *newForm, env *Environment) (Value, error) {
	class, err := in.evalObject("new", f.class, env)
	if err != nil {
		return nil, err
	}
	instance := NewEnvironment(INSTANCE, class)
	args := make([]Value, 0, len(f.args)+1)
	args = append(args, instance)
	for _, node := range f.args {
		v, err := in.Eval(node, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	constructor, err := class.Lookup("constructor")
	if err != nil {
		return nil, err
	}
	if _, err := in.apply("constructor", constructor, args); err != nil {
		return nil, err
	}
	return instance, nil
}

// =======
// Modules
// =======

func (in *Interpreter) evalModule(f *moduleForm, env *Environment) (Value, error) {
	module := newNamedEnvironment(MODULE, f.name, env)
	if _, err := in.evalBody(f.body, module); err != nil {
		return nil, err
	}
	return env.Define(f.name, module), nil
}

// evalImport loads, parses and evaluates a module into the global
// environment, wherever the import itself appears.
func (in *Interpreter) evalImport(f *importForm) (Value, error) {
	src, err := in.loader.Load(f.name)
	if err != nil {
		return nil, &ImportError{Module: f.name, Err: err}
	}
	program, errs := parser.Parse(f.name, src)
	if len(errs) != 0 {
		return nil, &ImportError{Module: f.name, Err: errs[0]}
	}
	body := make([]parser.Node, 0, len(program.Exprs)+1)
	body = append(body, parser.NewSymbol("begin"))
	body = append(body, program.Exprs...)
	return in.evalModule(&moduleForm{name: f.name, body: parser.NewList(body...)}, in.global)
}

// ===========
// Application
// ===========

func (in *Interpreter) evalCall(f *callForm, env *Environment) (Value, error) {
	callee, err := in.Eval(f.callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(f.args))
	for i, node := range f.args {
		v, err := in.Eval(node, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return in.apply(frameName(f.callee), callee, args)
}

func (in *Interpreter) apply(name string, callee Value, args []Value) (Value, error) {
	switch fn := callee.(type) {
	case *Builtin:
		return fn.Call(args)
	case *Function:
		return in.call(name, fn, args)
	}
	return nil, &NotCallableError{Value: callee}
}

// call invokes a closure in a fresh activation environment whose parent
// is the closure's defining environment. Missing arguments are bound to
// null and extra arguments are ignored.
func (in *Interpreter) call(name string, fn *Function, args []Value) (Value, error) {
	if in.stack.Depth() >= in.maxDepth {
		return nil, &StackOverflowError{Depth: in.stack.Depth()}
	}
	activation := NewEnvironment(ACTIVATION, fn.Env)
	for i, param := range fn.Params {
		activation.Define(param, arg(args, i))
	}
	in.stack.Push(name, activation)
	defer in.stack.Pop()
	return in.evalBody(fn.Body, activation)
}

// Call applies a function value to arguments from Go code.
func (in *Interpreter) Call(callee Value, args ...Value) (Value, error) {
	return in.apply("", callee, args)
}

// frameName names the call frame after the callee expression: a plain
// symbol, or the property name of (prop object name).
func frameName(callee parser.Node) string {
	switch callee := callee.(type) {
	case *parser.Symbol:
		return callee.Name
	case *parser.List:
		if callee.Head() == "prop" && callee.Len() == 3 {
			if sym, ok := callee.Items[2].(*parser.Symbol); ok {
				return sym.Name
			}
		}
	}
	return ""
}
