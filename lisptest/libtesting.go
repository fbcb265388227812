package lisptest

import (
	"github.com/bmatsuo/lispy/lisp"
)

// LoadPackage adds the assertion builtins used by test files to env.
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(builtins...)
}

var builtins = []lisp.LBuiltinDef{
	lisp.Builtin("assert", lisp.Exactly(1), builtinAssert),
	lisp.Builtin("assert-equal", lisp.Exactly(2), builtinAssertEqual),
}

func builtinAssert(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if !args[0].IsTrue() {
		return nil, lisp.Errorf(lisp.RuntimeError, "assertion failed")
	}
	return lisp.Unspecified(), nil
}

func builtinAssertEqual(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	expect, got := args[0], args[1]
	if !lisp.Equal(expect, got) {
		return nil, lisp.Errorf(lisp.RuntimeError, "assertion failed: expected %v (got %v)", expect, got)
	}
	return lisp.Unspecified(), nil
}
