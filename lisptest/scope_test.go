package lisptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"lexical scope", TestSequence{
			{"(define f (lambda (x) (lambda (y) (+ x y))))", ""},
			{"((f 3) 4)", "7"},
			{"(define x 999)", ""},
			{"((f 3) 4)", "7"},
			{"x", "999"},
		}},
		{"shadowing", TestSequence{
			{"(define x 1)", ""},
			{"((lambda (x) x) 2)", "2"},
			{"x", "1"},
			{"((lambda (x) (define x 5)) 2)", ""},
			{"x", "1"},
		}},
		{"closures capture their definition environment", TestSequence{
			{"(define make-adder (lambda (n) (lambda (y) (+ y n))))", ""},
			{"(define add2 (make-adder 2))", ""},
			{"(define n 100)", ""},
			{"(add2 1)", "3"},
			{"(define g (lambda () y))", ""},
			{"((lambda (y) (g)) 1)", "unbound-variable: unbound variable: y"},
		}},
		{"define in a call frame", TestSequence{
			{"(define h (lambda () (begin (define local 1) local)))", ""},
			{"(h)", "1"},
			{"local", "unbound-variable: unbound variable: local"},
		}},
		{"env introspection", TestSequence{
			{"((lambda (a b) (env)) 1 2)", "(a b)"},
			{"((lambda () (env)))", "()"},
		}},
		{"isolated environments", TestSequence{
			// every suite starts from a fresh root environment
			{"x", "unbound-variable: unbound variable: x"},
			{"f", "unbound-variable: unbound variable: f"},
		}},
	}
	RunTestSuite(t, tests)
}
