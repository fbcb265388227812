// Package lisplib is used to conveniently load the standard builtins into a
// lisp environment.
package lisplib

import (
	"fmt"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/libbase"
	"github.com/bmatsuo/lispy/lisp/lisplib/liblist"
	"github.com/bmatsuo/lispy/lisp/lisplib/libmath"
	"github.com/bmatsuo/lispy/parser/rdparser"
)

// LoadLibrary loads the standard library into env.
func LoadLibrary(env *lisp.LEnv) error {
	err := libbase.LoadPackage(env)
	if err != nil {
		return fmt.Errorf("base: %w", err)
	}
	err = libmath.LoadPackage(env)
	if err != nil {
		return fmt.Errorf("math: %w", err)
	}
	err = liblist.LoadPackage(env)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// NewEnv returns a new root environment with the standard library loaded.
// The environment reads source with rdparser unless config selects another
// reader.  Every call returns an independent environment.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(rdparser.NewReader())}, config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, err
	}
	err = LoadLibrary(env)
	if err != nil {
		return nil, err
	}
	return env, nil
}
