package lisp

import (
	"io"
	"log"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// InitializeUserEnv applies config to the runtime of env.  Builtins are not
// loaded by InitializeUserEnv, see package lisplib.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the height of its call stack to exceed n.  A
// call that would exceed n fails with a StackOverflow error instead of
// exhausting the host stack.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		env.Runtime.MaxHeight = n
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes environments write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		if env.Runtime.Logger == nil {
			return nil
		}
		env.Runtime.Logger.SetOutput(w)
		return nil
	}
}

// WithLogger returns a Config that makes environments log trace output with
// logger.
func WithLogger(logger *log.Logger) Config {
	return func(env *LEnv) error {
		env.Runtime.Logger = logger
		return nil
	}
}

// WithTrace returns a Config that logs every procedure call when on is true.
func WithTrace(on bool) Config {
	return func(env *LEnv) error {
		env.Runtime.Trace = on
		return nil
	}
}
