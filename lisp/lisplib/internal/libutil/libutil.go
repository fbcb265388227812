// Package libutil contains helpers shared by the builtin packages.
package libutil

import (
	"github.com/bmatsuo/lispy/lisp"
)

// Function returns a builtin named name that accepts arity arguments.
func Function(name string, arity lisp.Arity, fn lisp.LBuiltin) lisp.LBuiltinDef {
	return lisp.Builtin(name, arity, fn)
}

// Binding is a named constant.
type Binding struct {
	Name  string
	Value *lisp.LVal
}

// Define binds each constant in env, in order.
func Define(env *lisp.LEnv, bindings ...Binding) error {
	for _, b := range bindings {
		err := env.Put(lisp.Symbol(b.Name), b.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Number returns the value of the argument at position i.  Number returns a
// TypeError if the argument is not a number.
func Number(name string, args []*lisp.LVal, i int) (float64, error) {
	x := args[i]
	if x.Type != lisp.LNumber {
		return 0, lisp.Errorf(lisp.TypeError, "%s: argument %d is not a number: %v", name, i+1, x.Type)
	}
	return x.Num, nil
}

// Numbers returns the values of args.  Numbers returns a TypeError if any
// argument is not a number.
func Numbers(name string, args []*lisp.LVal) ([]float64, error) {
	xs := make([]float64, len(args))
	for i := range args {
		x, err := Number(name, args, i)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// List returns the argument at position i.  List returns a TypeError if the
// argument is not a list.
func List(name string, args []*lisp.LVal, i int) (*lisp.LVal, error) {
	lis := args[i]
	if lis.Type != lisp.LList {
		return nil, lisp.Errorf(lisp.TypeError, "%s: argument %d is not a list: %v", name, i+1, lis.Type)
	}
	return lis, nil
}

// Procedure returns the argument at position i.  Procedure returns a
// TypeError if the argument cannot be called.
func Procedure(name string, args []*lisp.LVal, i int) (*lisp.LVal, error) {
	fn := args[i]
	if !fn.IsCallable() {
		return nil, lisp.Errorf(lisp.TypeError, "%s: argument %d is not a procedure: %v", name, i+1, fn.Type)
	}
	return fn, nil
}
