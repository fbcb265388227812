package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sym and list keep the expressions below readable without a reader.
func sym(s string) *LVal { return Symbol(s) }

func num(x float64) *LVal { return Number(x) }

func list(cells ...*LVal) *LVal { return List(cells...) }

func testEnv(t *testing.T, config ...Config) *LEnv {
	t.Helper()
	env := NewEnv(nil)
	require.NoError(t, InitializeUserEnv(env, config...))
	require.NoError(t, env.AddBuiltins(
		Builtin("+", AtLeast(0), func(env *LEnv, args []*LVal) (*LVal, error) {
			var sum float64
			for _, a := range args {
				if a.Type != LNumber {
					return nil, Errorf(TypeError, "+: not a number: %v", a)
				}
				sum += a.Num
			}
			return Number(sum), nil
		}),
		Builtin("<", Exactly(2), func(env *LEnv, args []*LVal) (*LVal, error) {
			return Bool(args[0].Num < args[1].Num), nil
		}),
		Builtin("fail", Exactly(0), func(env *LEnv, args []*LVal) (*LVal, error) {
			return nil, fmt.Errorf("failed on purpose")
		}),
		Builtin("nothing", Exactly(0), func(env *LEnv, args []*LVal) (*LVal, error) {
			return nil, nil
		}),
	))
	return env
}

func evalOK(t *testing.T, env *LEnv, expr *LVal) *LVal {
	t.Helper()
	v, err := env.Eval(expr)
	require.NoError(t, err, "expression: %v", expr)
	return v
}

func TestEvalSelf(t *testing.T) {
	env := testEnv(t)
	for _, v := range []*LVal{num(3), True(), False(), Unspecified()} {
		assert.Same(t, v, evalOK(t, env, v))
	}
	_, err := env.Eval(nil)
	assert.True(t, errors.Is(err, TypeError))
	_, err = env.Eval(&LVal{Type: LInvalid})
	assert.True(t, errors.Is(err, TypeError))
}

func TestQuote(t *testing.T) {
	env := testEnv(t)
	x := list(num(1), sym("undefined-thing"), list())
	v := evalOK(t, env, list(sym("quote"), x))
	assert.Same(t, x, v)
	assert.Equal(t, "(1 undefined-thing ())", v.String())

	_, err := env.Eval(list(sym("quote")))
	assert.True(t, errors.Is(err, SyntaxError))
	_, err = env.Eval(list(sym("quote"), num(1), num(2)))
	assert.True(t, errors.Is(err, SyntaxError))
}

func TestIf(t *testing.T) {
	env := testEnv(t)
	q := func(v *LVal) *LVal { return list(sym("quote"), v) }
	v := evalOK(t, env, list(sym("if"), num(0), q(sym("a")), q(sym("b"))))
	assert.Equal(t, "a", v.Str)
	v = evalOK(t, env, list(sym("if"), list(), q(sym("a")), q(sym("b"))))
	assert.Equal(t, "a", v.Str)
	v = evalOK(t, env, list(sym("if"), False(), q(sym("a")), q(sym("b"))))
	assert.Equal(t, "b", v.Str)

	// the branch not taken is never evaluated
	v = evalOK(t, env, list(sym("if"), True(), num(1), sym("unbound-in-else")))
	assert.Equal(t, 1.0, v.Num)

	_, err := env.Eval(list(sym("if"), True(), num(1)))
	assert.True(t, errors.Is(err, SyntaxError))
}

func TestDefine(t *testing.T) {
	env := testEnv(t)
	v := evalOK(t, env, list(sym("define"), sym("x"), list(sym("+"), num(1), num(2))))
	assert.Equal(t, LUnspecified, v.Type)
	assertNumEqual(t, 3, evalOK(t, env, sym("x")))

	evalOK(t, env, list(sym("define"), sym("x"), num(4)))
	assertNumEqual(t, 4, evalOK(t, env, sym("x")))

	_, err := env.Eval(list(sym("define"), num(1), num(2)))
	assert.True(t, errors.Is(err, SyntaxError))
	_, err = env.Eval(list(sym("define"), sym("y")))
	assert.True(t, errors.Is(err, SyntaxError))
	_, err = env.Eval(list(sym("define"), sym("y"), sym("nope")))
	assert.True(t, errors.Is(err, UnboundVariable))
	assert.False(t, env.IsBound(sym("y")))
}

func TestLambdaScope(t *testing.T) {
	env := testEnv(t)
	// (define f (lambda (x) (lambda (y) (+ x y))))
	evalOK(t, env, list(sym("define"), sym("f"),
		list(sym("lambda"), list(sym("x")),
			list(sym("lambda"), list(sym("y")), list(sym("+"), sym("x"), sym("y"))))))
	// a later global x does not leak into the closure
	evalOK(t, env, list(sym("define"), sym("x"), num(999)))
	v := evalOK(t, env, list(list(sym("f"), num(3)), num(4)))
	assertNumEqual(t, 7, v)

	// parameters shadow globals without modifying them
	v = evalOK(t, env, list(list(sym("lambda"), list(sym("x")), sym("x")), num(5)))
	assertNumEqual(t, 5, v)
	assertNumEqual(t, 999, evalOK(t, env, sym("x")))

	// define inside a body binds in the call frame only
	evalOK(t, env, list(
		list(sym("lambda"), list(), list(sym("define"), sym("inner"), num(1)))))
	assert.False(t, env.IsBound(sym("inner")))

	fn := evalOK(t, env, sym("f"))
	assert.Equal(t, ProcedureMarker, fn.String())
}

func TestLambdaSyntax(t *testing.T) {
	env := testEnv(t)
	for _, expr := range []*LVal{
		list(sym("lambda"), list(sym("x"))),
		list(sym("lambda"), sym("x"), sym("x")),
		list(sym("lambda"), list(num(1)), num(1)),
		list(sym("lambda"), list(sym("x"), sym("x")), sym("x")),
	} {
		_, err := env.Eval(expr)
		assert.True(t, errors.Is(err, SyntaxError), "expression: %v", expr)
	}
}

func TestRecursion(t *testing.T) {
	env := testEnv(t)
	// (define count (lambda (n acc) (if (< n 1) acc (count (+ n -1) (+ acc 1)))))
	evalOK(t, env, list(sym("define"), sym("count"),
		list(sym("lambda"), list(sym("n"), sym("acc")),
			list(sym("if"), list(sym("<"), sym("n"), num(1)),
				sym("acc"),
				list(sym("count"), list(sym("+"), sym("n"), num(-1)), list(sym("+"), sym("acc"), num(1)))))))
	v := evalOK(t, env, list(sym("count"), num(100), num(0)))
	assertNumEqual(t, 100, v)
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestStackOverflow(t *testing.T) {
	env := testEnv(t, WithMaximumStackHeight(50))
	// (define loop (lambda (n) (+ 1 (loop n))))
	evalOK(t, env, list(sym("define"), sym("loop"),
		list(sym("lambda"), list(sym("n")), list(sym("+"), num(1), list(sym("loop"), sym("n"))))))
	_, err := env.Eval(list(sym("loop"), num(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, StackOverflow))
	assert.Equal(t, 50, GetStack(err).Height())
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestApplicationErrors(t *testing.T) {
	env := testEnv(t)

	_, err := env.Eval(list())
	assert.True(t, errors.Is(err, SyntaxError))

	// the operator is resolved before any argument is evaluated
	_, err = env.Eval(list(sym("undefinedproc"), num(1), sym("alsoundefined")))
	assert.EqualError(t, err, "unbound-variable: unbound variable: undefinedproc")

	_, err = env.Eval(list(num(1), num(2)))
	assert.True(t, errors.Is(err, TypeError))
	assert.EqualError(t, err, "type-error: not a procedure: 1")

	_, err = env.Eval(list(sym("<"), num(1)))
	assert.True(t, errors.Is(err, ArityError))
	assert.EqualError(t, err, "arity-error: <: expected 2 arguments (got 1)")

	_, err = env.Eval(list(list(sym("lambda"), list(sym("x")), sym("x"))))
	assert.True(t, errors.Is(err, ArityError))

	_, err = env.Eval(list(sym("+"), num(1), sym("x")))
	assert.True(t, errors.Is(err, UnboundVariable))

	_, err = env.Eval(list(sym("+"), num(1), list(sym("quote"), sym("x"))))
	assert.True(t, errors.Is(err, TypeError))

	_, err = env.Eval(list(sym("fail")))
	assert.True(t, errors.Is(err, RuntimeError))
	assert.Equal(t, "fail", GetStack(err).Top().Name)
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestEvalOrder(t *testing.T) {
	env := testEnv(t)
	var order []float64
	require.NoError(t, env.AddBuiltins(Builtin("note", Exactly(1), func(env *LEnv, args []*LVal) (*LVal, error) {
		order = append(order, args[0].Num)
		return args[0], nil
	})))
	v := evalOK(t, env, list(sym("+"),
		list(sym("note"), num(1)),
		list(sym("note"), num(2)),
		list(sym("note"), num(3))))
	assertNumEqual(t, 6, v)
	assert.Equal(t, []float64{1, 2, 3}, order)
}

func TestPrimitiveNilResult(t *testing.T) {
	env := testEnv(t)
	v := evalOK(t, env, list(sym("nothing")))
	assert.Equal(t, LUnspecified, v.Type)
}

func TestCall(t *testing.T) {
	env := testEnv(t)
	plus := evalOK(t, env, sym("+"))
	v, err := env.Call(plus, []*LVal{num(1), num(2)})
	require.NoError(t, err)
	assertNumEqual(t, 3, v)

	_, err = env.Call(num(1), nil)
	assert.True(t, errors.Is(err, TypeError))
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	env := testEnv(t, WithTrace(true), WithLogger(log.New(&buf, "", 0)))
	evalOK(t, env, list(sym("+"), num(1), num(2)))
	assert.Equal(t, "height 0: + (1 2)\n", buf.String())
}

type stubReader struct {
	exprs []*LVal
	err   error
}

func (r *stubReader) Read(name string, _ io.Reader) ([]*LVal, error) {
	return r.exprs, r.err
}

func TestLoad(t *testing.T) {
	env := testEnv(t)
	_, err := env.LoadString("test", "")
	assert.EqualError(t, err, "no reader configured")

	r := &stubReader{exprs: []*LVal{
		list(sym("define"), sym("z"), num(2)),
		list(sym("+"), sym("z"), num(1)),
	}}
	require.NoError(t, InitializeUserEnv(env, WithReader(r)))
	v, err := env.LoadString("test", "ignored")
	require.NoError(t, err)
	assertNumEqual(t, 3, v)

	r.exprs = nil
	v, err = env.LoadString("test", "")
	require.NoError(t, err)
	assert.Equal(t, LUnspecified, v.Type)

	r.err = Errorf(SyntaxError, "unexpected end of input")
	_, err = env.LoadString("test", "(")
	assert.True(t, errors.Is(err, SyntaxError))
}
