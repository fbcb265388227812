package lisp

import (
	"strings"

	"github.com/bmatsuo/lispy/symbol"
)

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Symbols are looked up, lists are special forms or procedure calls
// and every other value evaluates to itself.
//
// Eval is recursive.  Deeply nested calls grow the host stack unless
// Runtime.MaxHeight is set.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	if v == nil {
		return nil, env.Errorf(TypeError, "unknown expression type: nil")
	}
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LList:
		return env.EvalList(v)
	case LNumber, LBool, LPrimitive, LClosure, LUnspecified:
		return v, nil
	default:
		return nil, env.Errorf(TypeError, "unknown expression type: %v", v.Type)
	}
}

// EvalList evaluates the list expression s, either as a special form or as
// the application of a procedure to arguments.
func (env *LEnv) EvalList(s *LVal) (*LVal, error) {
	if s.Type != LList {
		return nil, env.Errorf(TypeError, "not a list: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return nil, env.Errorf(SyntaxError, "empty application: ()")
	}
	head := s.Cells[0]
	if head.Type == LSymbol {
		switch head.ID {
		case symQuote:
			return env.evalQuote(s)
		case symIf:
			return env.evalIf(s)
		case symDefine:
			return env.evalDefine(s)
		case symLambda:
			return env.evalLambda(s)
		}
	}

	f, err := env.Eval(head)
	if err != nil {
		return nil, err
	}
	args := make([]*LVal, len(s.Cells)-1)
	for i, expr := range s.Cells[1:] {
		args[i], err = env.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return env.call(callName(head, f), f, args)
}

func callName(head *LVal, f *LVal) string {
	if head.Type == LSymbol {
		return head.Str
	}
	if f.Type == LPrimitive {
		return f.Builtin.Name()
	}
	return KeywordLambda
}

// Call invokes the procedure fun with the already evaluated args.
func (env *LEnv) Call(fun *LVal, args []*LVal) (*LVal, error) {
	return env.call(callName(fun, fun), fun, args)
}

func (env *LEnv) call(name string, fun *LVal, args []*LVal) (*LVal, error) {
	if !fun.IsCallable() {
		return nil, env.Errorf(TypeError, "not a procedure: %v", fun)
	}
	rt := env.Runtime
	if rt.MaxHeight > 0 && rt.Stack.Height() >= rt.MaxHeight {
		return nil, env.Errorf(StackOverflow, "maximum stack height exceeded: %d", rt.MaxHeight)
	}
	rt.Stack.Push(name, env.ID)
	defer rt.Stack.Pop()
	if rt.Trace {
		rt.Logf("%sheight %d: %s %v", strings.Repeat("  ", rt.Stack.Height()-1), rt.Stack.Height()-1, name, List(args...))
	}

	switch fun.Type {
	case LPrimitive:
		arity := fun.Builtin.Arity()
		if !arity.Check(len(args)) {
			return nil, env.Errorf(ArityError, "%s: expected %s (got %d)", name, arity.Arguments(), len(args))
		}
		r, err := fun.Builtin.Eval(env, args)
		if err != nil {
			return nil, env.Error(err)
		}
		if r == nil {
			return Unspecified(), nil
		}
		return r, nil
	default:
		if len(fun.Formals) != len(args) {
			return nil, env.Errorf(ArityError, "%s: expected %s (got %d)", name, Exactly(len(fun.Formals)).Arguments(), len(args))
		}
		// The new frame is a child of the environment captured by the
		// closure, not of env.
		frame, err := NewFrame(fun.Formals, args, fun.Env)
		if err != nil {
			return nil, env.Error(err)
		}
		return frame.Eval(fun.Body)
	}
}

// (quote X)
func (env *LEnv) evalQuote(s *LVal) (*LVal, error) {
	if len(s.Cells) != 2 {
		return nil, env.Errorf(SyntaxError, "%s: expected 1 argument (got %d)", KeywordQuote, len(s.Cells)-1)
	}
	return s.Cells[1], nil
}

// (if TEST CONSEQ ALT)
func (env *LEnv) evalIf(s *LVal) (*LVal, error) {
	if len(s.Cells) != 4 {
		return nil, env.Errorf(SyntaxError, "%s: expected 3 arguments (got %d)", KeywordIf, len(s.Cells)-1)
	}
	test, err := env.Eval(s.Cells[1])
	if err != nil {
		return nil, err
	}
	if test.IsTrue() {
		return env.Eval(s.Cells[2])
	}
	return env.Eval(s.Cells[3])
}

// (define SYM EXPR)
func (env *LEnv) evalDefine(s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 {
		return nil, env.Errorf(SyntaxError, "%s: expected 2 arguments (got %d)", KeywordDefine, len(s.Cells)-1)
	}
	sym := s.Cells[1]
	if sym.Type != LSymbol {
		return nil, env.Errorf(SyntaxError, "%s: first argument is not a symbol: %v", KeywordDefine, sym)
	}
	v, err := env.Eval(s.Cells[2])
	if err != nil {
		return nil, err
	}
	err = env.Put(sym, v)
	if err != nil {
		return nil, err
	}
	return Unspecified(), nil
}

// (lambda (PARAM ...) BODY)
func (env *LEnv) evalLambda(s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 {
		return nil, env.Errorf(SyntaxError, "%s: expected 2 arguments (got %d)", KeywordLambda, len(s.Cells)-1)
	}
	params := s.Cells[1]
	if params.Type != LList {
		return nil, env.Errorf(SyntaxError, "%s: parameters are not a list: %v", KeywordLambda, params)
	}
	seen := make(map[symbol.ID]bool, len(params.Cells))
	for _, p := range params.Cells {
		if p.Type != LSymbol {
			return nil, env.Errorf(SyntaxError, "%s: parameter is not a symbol: %v", KeywordLambda, p)
		}
		if seen[p.ID] {
			return nil, env.Errorf(SyntaxError, "%s: duplicate parameter: %v", KeywordLambda, p)
		}
		seen[p.ID] = true
	}
	formals := make([]*LVal, len(params.Cells))
	copy(formals, params.Cells)
	return Lambda(formals, s.Cells[2], env), nil
}
