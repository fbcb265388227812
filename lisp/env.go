package lisp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/lispy/symbol"
)

// LEnv is one frame of a lexical environment.  A frame owns its bindings and
// refers to its parent frame; closures and active calls share frames by
// pointer, so a frame lives as long as anything references it.
type LEnv struct {
	ID      uint
	Scope   Bindings
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns a new, empty LEnv.  If parent is nil the returned LEnv is a
// root environment with its own StandardRuntime.  Otherwise it shares the
// runtime of parent.
func NewEnv(parent *LEnv) *LEnv {
	if parent == nil {
		return NewEnvRuntime(nil)
	}
	return newEnv(parent, parent.Runtime, NewBindings(0))
}

// NewEnvRuntime returns a new root LEnv that uses rt.  When rt is nil
// StandardRuntime is called to create a new Runtime.
func NewEnvRuntime(rt *Runtime) *LEnv {
	if rt == nil {
		rt = StandardRuntime()
	}
	return newEnv(nil, rt, NewBindings(0))
}

// NewFrame returns a child of parent which binds each of params to the
// argument at the same position in args.  NewFrame returns an ArityError
// when the number of params and args differ.
func NewFrame(params, args []*LVal, parent *LEnv) (*LEnv, error) {
	b, err := ZipBindings(params, args)
	if err != nil {
		return nil, err
	}
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = StandardRuntime()
	}
	return newEnv(parent, rt, b), nil
}

func newEnv(parent *LEnv, rt *Runtime, b Bindings) *LEnv {
	return &LEnv{
		ID:      rt.GenEnvID(),
		Scope:   b,
		Parent:  parent,
		Runtime: rt,
	}
}

// Root returns the outermost frame of env.
func (env *LEnv) Root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Len returns the number of variables bound in env itself, excluding its
// ancestors.
func (env *LEnv) Len() int {
	return env.Scope.Len()
}

// Get takes an LSymbol k and returns the LVal it is bound to in env or the
// nearest ancestor that binds it.
func (env *LEnv) Get(k *LVal) (*LVal, error) {
	if k.Type != LSymbol {
		return nil, env.Errorf(TypeError, "not a symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope.Get(k.ID)
		if ok {
			return v, nil
		}
	}
	return nil, env.Errorf(UnboundVariable, "unbound variable: %s", k.Str)
}

// IsBound returns true if k is bound in env or an ancestor.
func (env *LEnv) IsBound(k *LVal) bool {
	if k.Type != LSymbol {
		return false
	}
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope.Get(k.ID); ok {
			return true
		}
	}
	return false
}

// Put takes an LSymbol k and binds it to v in env.  Put never modifies the
// ancestors of env, a binding for k in an ancestor is shadowed instead.
func (env *LEnv) Put(k, v *LVal) error {
	if k.Type != LSymbol {
		return env.Errorf(TypeError, "not a symbol: %v", k.Type)
	}
	if v == nil {
		return env.Errorf(TypeError, "cannot bind %s to a nil value", k.Str)
	}
	env.Scope.Put(k.ID, v)
	return nil
}

// Extend copies every binding in b into env.
func (env *LEnv) Extend(b Bindings) {
	b.Range(func(id symbol.ID, v *LVal) bool {
		env.Scope.Put(id, v)
		return true
	})
}

// AddBuiltins binds each of funs to its name in env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) error {
	b := NewBindings(len(funs))
	for _, f := range funs {
		if f.Name() == "" {
			return fmt.Errorf("builtin has no name")
		}
		b.Put(symbol.Intern(f.Name()), Primitive(f))
	}
	env.Extend(b)
	return nil
}

// Names returns the symbols bound in env itself in the order they were
// first bound.
func (env *LEnv) Names() []*LVal {
	names := make([]*LVal, 0, env.Scope.Len())
	env.Scope.Range(func(id symbol.ID, _ *LVal) bool {
		names = append(names, Symbol(id.String()))
		return true
	})
	return names
}

// Errorf returns an error with the given condition that records the current
// call stack.
func (env *LEnv) Errorf(condition Condition, format string, v ...interface{}) error {
	err := Errorf(condition, format, v...)
	err.(*ErrorVal).Stack = env.Runtime.Stack.Copy()
	return err
}

// Error converts err into an *ErrorVal that records the current call stack,
// unless err already has a stack.  Errors that are not *ErrorVal become
// RuntimeError values which wrap err.
func (env *LEnv) Error(err error) error {
	var lerr *ErrorVal
	if !errors.As(err, &lerr) {
		return &ErrorVal{
			Condition: RuntimeError,
			Msg:       err.Error(),
			Err:       err,
			Stack:     env.Runtime.Stack.Copy(),
		}
	}
	if lerr.Stack == nil {
		lerr.Stack = env.Runtime.Stack.Copy()
	}
	return err
}

// Load reads expressions from r using the runtime's Reader and evaluates
// them in env in order.  Load returns the value of the last expression, or
// an unspecified value if r contained no expressions.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	ret := Unspecified()
	for _, expr := range exprs {
		ret, err = env.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// LoadString is like Load but reads expressions from the string source.
func (env *LEnv) LoadString(name, source string) (*LVal, error) {
	return env.Load(name, strings.NewReader(source))
}
