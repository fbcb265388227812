package lisp

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// DefaultLogPrefix is the prefix of messages written by a Runtime's default
// logger.
const DefaultLogPrefix = "lispy: "

// Runtime is the state shared by every frame in an environment tree.
type Runtime struct {
	Stack  *CallStack
	Reader Reader
	Stdout io.Writer
	Stderr io.Writer
	// Logger receives trace output.  When Logger is nil messages are written
	// to Stderr with DefaultLogPrefix.
	Logger *log.Logger
	// Trace enables logging of every procedure call.
	Trace bool
	// MaxHeight bounds the height of Stack.  A value less than one means the
	// stack is only bounded by the host.
	MaxHeight int

	numenv uint64
}

// StandardRuntime returns a new Runtime that writes to os.Stdout and
// os.Stderr and has no Reader.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// GenEnvID returns a new ID for an environment frame.
func (rt *Runtime) GenEnvID() uint {
	return uint(atomic.AddUint64(&rt.numenv, 1))
}

// Logf logs a message using rt.Logger.
func (rt *Runtime) Logf(format string, v ...interface{}) {
	if rt.Logger == nil {
		rt.Logger = log.New(rt.Stderr, DefaultLogPrefix, 0)
	}
	rt.Logger.Printf(format, v...)
}
