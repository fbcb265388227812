// Package lisptest runs lisp expressions and source files as go tests.
package lisptest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib"
	"github.com/bmatsuo/lispy/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result, or the error message
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns an environment with the standard library and the testing
// builtins loaded.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env, err := lisplib.NewEnv(config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	err = LoadPackage(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load testing builtins: %w", err)
	}
	return env, nil
}

// EvalString parses and evaluates the single expression in text and returns
// its printed result.  Errors, including syntax errors, are returned as
// their message so that they can be compared like any other result.
func EvalString(env *lisp.LEnv, text string) string {
	expr, err := parser.Parse(text)
	if err != nil {
		return err.Error()
	}
	v, err := env.Eval(expr)
	if err != nil {
		return err.Error()
	}
	return v.String()
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for i, test := range tests {
		env, err := NewEnv(config...)
		if err != nil {
			t.Fatalf("test %d %q: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			result := EvalString(env, expr.Expr)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// Runner loads lisp source files which contain assertions.
type Runner struct {
	// Readers maps names to constructors for the readers each file is
	// loaded with.  When Readers is nil every file is loaded once with each
	// reader in package parser.
	Readers map[string]func() lisp.Reader
	// Config is applied to every test environment.
	Config []lisp.Config
}

func (r *Runner) readers() map[string]func() lisp.Reader {
	if r.Readers != nil {
		return r.Readers
	}
	return map[string]func() lisp.Reader{
		"rdparser": parser.NewReader,
		"parsec":   parser.NewParsecReader,
	}
}

// RunTestFile loads the file at path in a new environment for every reader
// and fails if any expression in the file fails.
func (r *Runner) RunTestFile(t *testing.T, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	for name, newReader := range r.readers() {
		t.Run(name, func(t *testing.T) {
			config := append([]lisp.Config{lisp.WithReader(newReader())}, r.Config...)
			env, err := NewEnv(config...)
			if err != nil {
				t.Error(err.Error())
				return
			}
			_, err = env.Load(filepath.Base(path), bytes.NewReader(source))
			if err != nil {
				t.Error(err.Error())
				if stack := lisp.GetStack(err); stack != nil {
					var buf bytes.Buffer
					stack.DebugPrint(&buf)
					t.Error(buf.String())
				}
			}
		})
	}
}
