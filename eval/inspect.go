package eval

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// This file implements value formatting. Display is what print writes;
// Inspect is what the REPL echoes, with strings quoted. Instances can
// hold references to themselves, so environments are visited at most
// once per call.

type valueInspector func(v Value) string

func Display(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return Inspect(v)
}

func Inspect(v Value) string {
	seen := map[*Environment]bool{}
	var visit valueInspector
	visit = func(v Value) string {
		switch v := v.(type) {
		case nil:
			return "<nil>"
		case Null:
			return "null"
		case Boolean:
			if v {
				return "true"
			}
			return "false"
		case Number:
			return strconv.FormatFloat(float64(v), 'g', -1, 64)
		case String:
			return strconv.Quote(string(v))
		case *Function:
			return fmt.Sprintf("[Function (%s) %p]", strings.Join(v.Params, " "), v)
		case *Builtin:
			return fmt.Sprintf("[Builtin %s]", v.name)
		case *Environment:
			if seen[v] {
				return "(...)"
			}
			seen[v] = true
			return v.inspect(visit)
		}
		panic(fmt.Sprintf("cannot inspect: %#+v", v))
	}
	return visit(v)
}

func (e *Environment) inspect(f valueInspector) string {
	var buf bytes.Buffer
	buf.WriteString("[")
	switch e.kind {
	case CLASS:
		buf.WriteString("Class ")
		buf.WriteString(e.name)
	case MODULE:
		buf.WriteString("Module ")
		buf.WriteString(e.name)
	case INSTANCE:
		buf.WriteString("Instance")
		if e.outer != nil && e.outer.name != "" {
			buf.WriteString(" of ")
			buf.WriteString(e.outer.name)
		}
	default:
		kind := e.kind.String()
		buf.WriteString(kind[:1] + strings.ToLower(kind[1:]))
		buf.WriteString(" Environment")
	}
	// instances list their values, everything else only names.
	names := e.Names()
	if len(names) != 0 {
		buf.WriteString(" {")
		for i, name := range names {
			if i != 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(name)
			if e.kind == INSTANCE {
				buf.WriteString(": ")
				buf.WriteString(f(e.store[name]))
			}
		}
		buf.WriteString("}")
	}
	buf.WriteString("]")
	return buf.String()
}

func typeName(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nothing"
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case *Function, *Builtin:
		return "function"
	case *Environment:
		return strings.ToLower(v.kind.String())
	}
	return v.Type().String()
}
