// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib"
	"github.com/bmatsuo/lispy/parser"
	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt used when RunRepl is given an empty prompt.
const DefaultPrompt = "lispy> "

// LineReader reads lines of input for a REPL.  *readline.Instance is a
// LineReader.
type LineReader interface {
	// ReadSlice returns the next line without its line terminator.  An
	// interrupted read returns readline.ErrInterrupt.
	ReadSlice() ([]byte, error)
	SetPrompt(prompt string)
}

// RunRepl runs a repl on the terminal with the standard library loaded.
// Input history is saved to historyFile unless it is empty.
func RunRepl(prompt, historyFile string, config ...lisp.Config) error {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	env, err := lisplib.NewEnv(config...)
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r := &REPL{
		Env:    env,
		Prompt: prompt,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return r.Run(rl)
}

// REPL evaluates lines from a LineReader in Env.
type REPL struct {
	Env    *lisp.LEnv
	Prompt string
	Stdout io.Writer
	Stderr io.Writer
}

// Run reads and evaluates input until rl returns io.EOF.  Input which ends
// inside an unclosed list is continued on the following lines.  Errors are
// reported on Stderr and do not stop the loop.
func (r *REPL) Run(rl LineReader) error {
	// prompt had better be ascii...
	contPrompt := strings.Repeat(" ", len(r.Prompt))
	rl.SetPrompt(r.Prompt)
	var buf []byte
	reset := func() {
		buf = buf[:0]
		rl.SetPrompt(r.Prompt)
	}
	for {
		line, err := rl.ReadSlice()
		if errors.Is(err, readline.ErrInterrupt) {
			reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line...)
		if len(bytes.TrimSpace(buf)) == 0 {
			reset()
			continue
		}
		exprs, err := r.Env.Runtime.Reader.Read("repl", bytes.NewReader(buf))
		if parser.IsIncomplete(err) {
			rl.SetPrompt(contPrompt)
			continue
		}
		reset()
		if err != nil {
			r.errln(err)
			continue
		}
		r.eval(exprs)
	}
}

func (r *REPL) eval(exprs []*lisp.LVal) {
	for _, expr := range exprs {
		v, err := r.Env.Eval(expr)
		if err != nil {
			r.errln(err)
			if stack := lisp.GetStack(err); stack.Height() > 0 {
				stack.DebugPrint(r.Stderr)
			}
			return
		}
		s := v.String()
		if s != "" {
			fmt.Fprintln(r.Stdout, s)
		}
	}
}

func (r *REPL) errln(v ...interface{}) {
	fmt.Fprintln(r.Stderr, v...)
}
