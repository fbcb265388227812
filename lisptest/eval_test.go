package lisptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self evaluating", TestSequence{
			{"3", "3"},
			{"-2.5", "-2.5"},
			{"#t", "#t"},
			{"#f", "#f"},
			{"+", "#<procedure>"},
		}},
		{"quote", TestSequence{
			{"(quote (1 2 3))", "(1 2 3)"},
			{"(quote x)", "x"},
			{"(quote ())", "()"},
			{"(quote (quote x))", "(quote x)"},
		}},
		{"arithmetic", TestSequence{
			{"(+)", "0"},
			{"(*)", "1"},
			{"(+ 2)", "2"},
			{"(- 2)", "-2"},
			{"(/ 2)", "0.5"},
			{"(+ 1 2 3)", "6"},
			{"(+ 1 (* 2 3))", "7"},
			{"(- 0.5 1)", "-0.5"},
			{"(* 2 0.75)", "1.5"},
			{"(- 10 1 2)", "7"},
			{"(/ 12 2 3)", "2"},
		}},
		{"logic", TestSequence{
			{"(not #f)", "#t"},
			{"(not #t)", "#f"},
			{"(not 0)", "#f"},
			{"(not (quote ()))", "#f"},
			{"(= 1 1.0)", "#t"},
			{"(= 5 1)", "#f"},
			{"(< 0 1)", "#t"},
			{"(< 1 1)", "#f"},
			{"(<= 1 1)", "#t"},
			{"(> 2 1)", "#t"},
			{"(>= 0 1)", "#f"},
		}},
		{"if", TestSequence{
			{"(if 0 (quote a) (quote b))", "a"},
			{"(if (quote ()) 1 2)", "1"},
			{"(if #f 1 2)", "2"},
			{"(if (< 1 2) (quote yes) (quote no))", "yes"},
			{"(if #t 1 undefined)", "1"},
		}},
		{"define", TestSequence{
			{"(define r 10)", ""},
			{"r", "10"},
			{"(* pi (* r r))", "314.1592653589793"},
			{"(define r 11)", ""},
			{"r", "11"},
			{"(begin (define r 10) (* r r))", "100"},
		}},
		{"lambda", TestSequence{
			{"((lambda () (+ 1 1)))", "2"},
			{"((lambda (n) (+ n 1)) 1)", "2"},
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"(lambda (x) x)", "#<procedure>"},
			{"(define add (lambda (x y) (+ x y)))", ""},
			{"(add 3 4)", "7"},
		}},
		{"recursion", TestSequence{
			{"(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))", ""},
			{"(fact 10)", "3628800"},
			{"(define fib (lambda (n) (if (< n 2) 1 (+ (fib (- n 1)) (fib (- n 2))))))", ""},
			{"(fib 10)", "89"},
			{"(map fib (list 0 1 2 3 4 5))", "(1 1 2 3 5 8)"},
		}},
		{"keywords take priority over bindings", TestSequence{
			{"(define if (lambda (a b c) (quote shadowed)))", ""},
			{"(if #f 1 2)", "2"},
			{"(define quote 1)", ""},
			{"(quote x)", "x"},
		}},
	}
	RunTestSuite(t, tests)
}
