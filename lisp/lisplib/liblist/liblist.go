// Package liblist provides list construction and traversal builtins.
package liblist

import (
	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the list builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(builtins...)
}

var builtins = []lisp.LBuiltinDef{
	libutil.Function("car", lisp.Exactly(1), builtinCAR),
	libutil.Function("cdr", lisp.Exactly(1), builtinCDR),
	libutil.Function("cons", lisp.Exactly(2), builtinCons),
	libutil.Function("list", lisp.AtLeast(0), builtinList),
	libutil.Function("length", lisp.Exactly(1), builtinLength),
	libutil.Function("append", lisp.AtLeast(0), builtinAppend),
	libutil.Function("map", lisp.Exactly(2), builtinMap),
	libutil.Function("apply", lisp.Exactly(2), builtinApply),
}

func builtinCAR(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	lis, err := libutil.List("car", args, 0)
	if err != nil {
		return nil, err
	}
	if lis.Len() == 0 {
		return nil, lisp.Errorf(lisp.RuntimeError, "car: empty list")
	}
	return lis.Cells[0], nil
}

// The cdr of the empty list is the empty list.
func builtinCDR(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	lis, err := libutil.List("cdr", args, 0)
	if err != nil {
		return nil, err
	}
	if lis.Len() == 0 {
		return lisp.List(), nil
	}
	return lisp.List(copyCells(lis.Cells[1:])...), nil
}

func builtinCons(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	lis, err := libutil.List("cons", args, 1)
	if err != nil {
		return nil, err
	}
	cells := make([]*lisp.LVal, 0, lis.Len()+1)
	cells = append(cells, args[0])
	cells = append(cells, lis.Cells...)
	return lisp.List(cells...), nil
}

func builtinList(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.List(copyCells(args)...), nil
}

func builtinLength(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	lis, err := libutil.List("length", args, 0)
	if err != nil {
		return nil, err
	}
	return lisp.Number(float64(lis.Len())), nil
}

func builtinAppend(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	var cells []*lisp.LVal
	for i := range args {
		lis, err := libutil.List("append", args, i)
		if err != nil {
			return nil, err
		}
		cells = append(cells, lis.Cells...)
	}
	return lisp.List(cells...), nil
}

// (map proc list) returns a new list; the argument list is never modified.
func builtinMap(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	f, err := libutil.Procedure("map", args, 0)
	if err != nil {
		return nil, err
	}
	lis, err := libutil.List("map", args, 1)
	if err != nil {
		return nil, err
	}
	cells := make([]*lisp.LVal, lis.Len())
	for i, c := range lis.Cells {
		cells[i], err = env.Call(f, []*lisp.LVal{c})
		if err != nil {
			return nil, err
		}
	}
	return lisp.List(cells...), nil
}

func builtinApply(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	f, err := libutil.Procedure("apply", args, 0)
	if err != nil {
		return nil, err
	}
	lis, err := libutil.List("apply", args, 1)
	if err != nil {
		return nil, err
	}
	return env.Call(f, copyCells(lis.Cells))
}

func copyCells(cells []*lisp.LVal) []*lisp.LVal {
	cp := make([]*lisp.LVal, len(cells))
	copy(cp, cells)
	return cp
}
