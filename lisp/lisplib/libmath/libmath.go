// Package libmath provides arithmetic, numeric comparison and the host math
// functions.
package libmath

import (
	"math"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the math builtins to env
func LoadPackage(env *lisp.LEnv) error {
	err := libutil.Define(env,
		libutil.Binding{Name: "pi", Value: lisp.Number(math.Pi)},
		libutil.Binding{Name: "e", Value: lisp.Number(math.E)},
		libutil.Binding{Name: "inf", Value: lisp.Number(math.Inf(1))},
	)
	if err != nil {
		return err
	}
	return env.AddBuiltins(builtins...)
}

var builtins = []lisp.LBuiltinDef{
	libutil.Function("+", lisp.AtLeast(0), builtinAdd),
	libutil.Function("-", lisp.AtLeast(1), builtinSub),
	libutil.Function("*", lisp.AtLeast(0), builtinMul),
	libutil.Function("/", lisp.AtLeast(1), builtinDiv),
	libutil.Function("<", lisp.Exactly(2), compare("<", func(a, b float64) bool { return a < b })),
	libutil.Function(">", lisp.Exactly(2), compare(">", func(a, b float64) bool { return a > b })),
	libutil.Function("<=", lisp.Exactly(2), compare("<=", func(a, b float64) bool { return a <= b })),
	libutil.Function(">=", lisp.Exactly(2), compare(">=", func(a, b float64) bool { return a >= b })),
	libutil.Function("=", lisp.Exactly(2), compare("=", func(a, b float64) bool { return a == b })),
	libutil.Function("abs", lisp.Exactly(1), unary("abs", math.Abs)),
	libutil.Function("max", lisp.AtLeast(1), builtinMax),
	libutil.Function("min", lisp.AtLeast(1), builtinMin),
	libutil.Function("round", lisp.Between(1, 2), builtinRound),
	libutil.Function("sqrt", lisp.Exactly(1), unary("sqrt", math.Sqrt)),
	libutil.Function("exp", lisp.Exactly(1), unary("exp", math.Exp)),
	libutil.Function("log", lisp.Between(1, 2), builtinLog),
	libutil.Function("sin", lisp.Exactly(1), unary("sin", math.Sin)),
	libutil.Function("cos", lisp.Exactly(1), unary("cos", math.Cos)),
	libutil.Function("tan", lisp.Exactly(1), unary("tan", math.Tan)),
	libutil.Function("asin", lisp.Exactly(1), unary("asin", math.Asin)),
	libutil.Function("acos", lisp.Exactly(1), unary("acos", math.Acos)),
	libutil.Function("atan", lisp.Exactly(1), unary("atan", math.Atan)),
	libutil.Function("floor", lisp.Exactly(1), unary("floor", math.Floor)),
	libutil.Function("ceil", lisp.Exactly(1), unary("ceil", math.Ceil)),
	libutil.Function("expt", lisp.Exactly(2), builtinExpt),
}

func builtinAdd(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("+", args)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return lisp.Number(sum), nil
}

// With one argument, - negates it.
func builtinSub(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		return lisp.Number(-xs[0]), nil
	}
	diff := xs[0]
	for _, x := range xs[1:] {
		diff -= x
	}
	return lisp.Number(diff), nil
}

func builtinMul(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, x := range xs {
		prod *= x
	}
	return lisp.Number(prod), nil
}

// With one argument / returns its reciprocal.
func builtinDiv(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		xs = append([]float64{1}, xs...)
	}
	quo := xs[0]
	for _, x := range xs[1:] {
		if x == 0 {
			return nil, lisp.Errorf(lisp.RuntimeError, "/: division by zero")
		}
		quo /= x
	}
	return lisp.Number(quo), nil
}

func compare(name string, fn func(a, b float64) bool) lisp.LBuiltin {
	return func(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
		xs, err := libutil.Numbers(name, args)
		if err != nil {
			return nil, err
		}
		return lisp.Bool(fn(xs[0], xs[1])), nil
	}
}

func builtinMax(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("max", args)
	if err != nil {
		return nil, err
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return lisp.Number(max), nil
}

func builtinMin(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("min", args)
	if err != nil {
		return nil, err
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return lisp.Number(min), nil
}

// (round x [ndigits]) rounds half to even.
func builtinRound(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("round", args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		return lisp.Number(math.RoundToEven(xs[0])), nil
	}
	if xs[1] != math.Trunc(xs[1]) {
		return nil, lisp.Errorf(lisp.TypeError, "round: number of digits is not an integer: %v", lisp.FormatNumber(xs[1]))
	}
	p := math.Pow(10, xs[1])
	return lisp.Number(math.RoundToEven(xs[0]*p) / p), nil
}

// (log x [base])
func builtinLog(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("log", args)
	if err != nil {
		return nil, err
	}
	y := math.Log(xs[0])
	if len(xs) == 2 {
		y /= math.Log(xs[1])
	}
	return checkDomain("log", xs, y)
}

func builtinExpt(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	xs, err := libutil.Numbers("expt", args)
	if err != nil {
		return nil, err
	}
	return checkDomain("expt", xs, math.Pow(xs[0], xs[1]))
}

func unary(name string, fn func(float64) float64) lisp.LBuiltin {
	return func(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
		x, err := libutil.Number(name, args, 0)
		if err != nil {
			return nil, err
		}
		return checkDomain(name, []float64{x}, fn(x))
	}
}

// checkDomain rejects a NaN result computed from arguments which are not
// NaN, such as the square root of a negative number.
func checkDomain(name string, xs []float64, y float64) (*lisp.LVal, error) {
	if !math.IsNaN(y) {
		return lisp.Number(y), nil
	}
	for _, x := range xs {
		if math.IsNaN(x) {
			return lisp.Number(y), nil
		}
	}
	return nil, lisp.Errorf(lisp.RuntimeError, "%s: math domain error", name)
}
