package lisp

import "fmt"

// LBuiltin is a function that implements a primitive procedure.  Arguments
// are already evaluated.
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

// LBuiltinDef is a named primitive procedure.
type LBuiltinDef interface {
	Name() string
	// Arity is checked by the evaluator before Eval is called.
	Arity() Arity
	Eval(env *LEnv, args []*LVal) (*LVal, error)
}

// Arity is the range of argument counts a primitive accepts.  A negative
// Max means there is no upper bound.
type Arity struct {
	Min int
	Max int
}

// Exactly returns an Arity accepting exactly n arguments.
func Exactly(n int) Arity {
	return Arity{n, n}
}

// AtLeast returns an Arity accepting n or more arguments.
func AtLeast(n int) Arity {
	return Arity{n, -1}
}

// Between returns an Arity accepting between min and max arguments
// (inclusive).
func Between(min, max int) Arity {
	return Arity{min, max}
}

// Check returns true if n arguments satisfy a.
func (a Arity) Check(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprint(a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// Arguments describes a with a counted noun, as in "1 argument" or
// "at least 2 arguments".
func (a Arity) Arguments() string {
	if a.Min == 1 && (a.Max == 1 || a.Max < 0) {
		return a.String() + " argument"
	}
	return a.String() + " arguments"
}

type langBuiltin struct {
	name  string
	arity Arity
	fn    LBuiltin
}

// Builtin returns an LBuiltinDef which calls fn.
func Builtin(name string, arity Arity, fn LBuiltin) LBuiltinDef {
	return &langBuiltin{name, arity, fn}
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Arity() Arity {
	return fun.arity
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) (*LVal, error) {
	return fun.fn(env, args)
}
