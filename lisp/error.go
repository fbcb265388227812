package lisp

import (
	"errors"
	"fmt"
)

// Condition classifies an evaluation error.  A Condition is itself an error
// so callers can test for a class of failure with errors.Is.
type Condition string

// Possible Condition values
const (
	// SyntaxError is malformed input at read time or a malformed special
	// form.
	SyntaxError Condition = "syntax-error"
	// UnboundVariable is the lookup of a symbol bound in no frame.
	UnboundVariable Condition = "unbound-variable"
	// TypeError is an expression of unknown shape, the invocation of a value
	// which is not a procedure or a primitive given operands of the wrong
	// kind.
	TypeError Condition = "type-error"
	// ArityError is a procedure invoked with the wrong number of arguments.
	ArityError Condition = "arity-error"
	// StackOverflow is a call exceeding Runtime.MaxHeight.
	StackOverflow Condition = "stack-overflow"
	// RuntimeError is any other failure reported by a primitive.
	RuntimeError Condition = "runtime-error"
)

// Error implements the error interface.
func (c Condition) Error() string {
	return string(c)
}

// ErrorVal is an evaluation error.  Every error aborts the evaluation that
// produced it.
type ErrorVal struct {
	Condition Condition
	Msg       string
	// Err is the underlying cause, if any.
	Err error
	// Stack is a copy of the call stack at the point of failure.  Stack is
	// nil for errors raised outside of evaluation (e.g. by a reader).
	Stack *CallStack
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return fmt.Sprintf("%s: %s", e.Condition, e.Msg)
}

// Unwrap allows errors.Is to match the Condition of e as well as its cause.
func (e *ErrorVal) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Condition, e.Err}
	}
	return []error{e.Condition}
}

// Errorf returns an error with the given condition and a formatted message.
// Like fmt.Errorf, a %w verb in format records the wrapped error as the cause.
func Errorf(condition Condition, format string, v ...interface{}) error {
	err := fmt.Errorf(format, v...)
	return &ErrorVal{
		Condition: condition,
		Msg:       err.Error(),
		Err:       errors.Unwrap(err),
	}
}

// GetCondition returns the Condition of err.  GetCondition returns false if
// err is not, and does not wrap, an *ErrorVal.
func GetCondition(err error) (Condition, bool) {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return lerr.Condition, true
	}
	return "", false
}

// GetStack returns the call stack recorded in err, if any.
func GetStack(err error) *CallStack {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return lerr.Stack
	}
	return nil
}
