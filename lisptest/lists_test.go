package lisptest

import "testing"

func TestLists(t *testing.T) {
	tests := TestSuite{
		{"construction", TestSequence{
			{"(list)", "()"},
			{"(list 1 2 3)", "(1 2 3)"},
			{"(cons 1 (quote (2 3)))", "(1 2 3)"},
			{"(cons 1 (cons 2 (cons 3 (list))))", "(1 2 3)"},
			{"(append (list 1) (list 2 3) (list))", "(1 2 3)"},
			{"(append)", "()"},
			{"(list (list 1) (quote ()) #t)", "((1) () #t)"},
		}},
		{"access", TestSequence{
			{"(car (quote (1 2 3)))", "1"},
			{"(cdr (quote (1 2 3)))", "(2 3)"},
			{"(cdr (quote (1)))", "()"},
			{"(cdr (quote ()))", "()"},
			{"(length (list 1 2 3))", "3"},
			{"(length (quote ()))", "0"},
		}},
		{"higher order", TestSequence{
			{"(map (lambda (x) (* x x)) (list 1 2 3))", "(1 4 9)"},
			{"(map car (quote ((a 1) (b 2))))", "(a b)"},
			{"(apply + (list 1 2 3))", "6"},
			{"(apply (lambda (x y) (- x y)) (list 5 3))", "2"},
			{"(apply list (quote ()))", "()"},
		}},
		{"quoted lists are not modified", TestSequence{
			{"(define xs (quote (1 2 3)))", ""},
			{"(map (lambda (x) (+ x 1)) xs)", "(2 3 4)"},
			{"(cdr xs)", "(2 3)"},
			{"xs", "(1 2 3)"},
		}},
		{"predicates", TestSequence{
			{"(null? (list))", "#t"},
			{"(null? (list 1))", "#f"},
			{"(list? (list))", "#t"},
			{"(list? 1)", "#f"},
			{"(number? 1)", "#t"},
			{"(number? (quote a))", "#f"},
			{"(symbol? (quote a))", "#t"},
			{"(boolean? #f)", "#t"},
			{"(boolean? 0)", "#f"},
			{"(procedure? car)", "#t"},
			{"(procedure? (lambda () 1))", "#t"},
			{"(procedure? (quote car))", "#f"},
		}},
		{"equality", TestSequence{
			{"(eq? (quote a) (quote a))", "#t"},
			{"(eq? 2 2)", "#t"},
			{"(eq? (list 1) (list 1))", "#f"},
			{"(define xs (list 1))", ""},
			{"(eq? xs xs)", "#t"},
			{"(equal? (list 1 (list 2)) (list 1 (list 2)))", "#t"},
			{"(equal? (list 1) (list 2))", "#f"},
			{"(eq? car car)", "#t"},
			{"(equal? (lambda () 1) (lambda () 1))", "#f"},
		}},
	}
	RunTestSuite(t, tests)
}
