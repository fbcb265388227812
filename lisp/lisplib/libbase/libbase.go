// Package libbase provides the boolean constants, predicates, sequencing and
// introspection builtins.
package libbase

import (
	"fmt"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the base builtins to env
func LoadPackage(env *lisp.LEnv) error {
	err := libutil.Define(env,
		libutil.Binding{Name: "#t", Value: lisp.True()},
		libutil.Binding{Name: "#f", Value: lisp.False()},
	)
	if err != nil {
		return err
	}
	return env.AddBuiltins(builtins...)
}

var builtins = []lisp.LBuiltinDef{
	libutil.Function("begin", lisp.AtLeast(1), builtinBegin),
	libutil.Function("not", lisp.Exactly(1), builtinNot),
	libutil.Function("eq?", lisp.Exactly(2), builtinEqP),
	libutil.Function("equal?", lisp.Exactly(2), builtinEqualP),
	libutil.Function("number?", lisp.Exactly(1), typePredicate(lisp.LNumber)),
	libutil.Function("symbol?", lisp.Exactly(1), typePredicate(lisp.LSymbol)),
	libutil.Function("boolean?", lisp.Exactly(1), typePredicate(lisp.LBool)),
	libutil.Function("list?", lisp.Exactly(1), typePredicate(lisp.LList)),
	libutil.Function("procedure?", lisp.Exactly(1), builtinProcedureP),
	libutil.Function("null?", lisp.Exactly(1), builtinNullP),
	libutil.Function("display", lisp.Exactly(1), builtinDisplay),
	libutil.Function("env", lisp.Exactly(0), builtinEnv),
}

// Arguments are evaluated in order before the call, so begin only has to
// select the last one.
func builtinBegin(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return args[len(args)-1], nil
}

func builtinNot(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.Bool(!args[0].IsTrue()), nil
}

// Atoms with the same value are eq?.  Lists and procedures are only eq? to
// themselves.
func builtinEqP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	a, b := args[0], args[1]
	if a == b {
		return lisp.True(), nil
	}
	switch a.Type {
	case lisp.LNumber, lisp.LSymbol, lisp.LBool, lisp.LUnspecified:
		return lisp.Bool(lisp.Equal(a, b)), nil
	}
	return lisp.False(), nil
}

func builtinEqualP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.Bool(lisp.Equal(args[0], args[1])), nil
}

func typePredicate(typ lisp.LType) lisp.LBuiltin {
	return func(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
		return lisp.Bool(args[0].Type == typ), nil
	}
}

func builtinProcedureP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.Bool(args[0].IsCallable()), nil
}

func builtinNullP(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.Bool(args[0].IsNil()), nil
}

func builtinDisplay(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	w := env.Runtime.Stdout
	_, err := lisp.Format(w, args[0])
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return lisp.Unspecified(), nil
}

// env is the environment the call was made from.
func builtinEnv(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.List(env.Names()...), nil
}
