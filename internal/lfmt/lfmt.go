// Package lfmt contains helpers for writing the printed representation of
// lisp values to an io.Writer while keeping track of the bytes written.
package lfmt

import "io"

// WriteOp is a function that looks like w.Write but may involve many calls to
// w.Write and aggregate the result.
type WriteOp func(w io.Writer) (int, error)

// CountingWriter is an io.Writer that tracks the total number of bytes written
// across all calls to the Write method.
type CountingWriter struct {
	w   io.Writer
	n   int
	err error
}

// NewCountingWriter wraps w as a CountingWriter.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// N returns the total number of bytes written.
func (w *CountingWriter) N() int {
	return w.n
}

// Err returns the first error encountered by w.
func (w *CountingWriter) Err() error {
	return w.err
}

// Write implements io.Writer.  Once an error has been encountered Write
// does nothing and returns that error.
func (w *CountingWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	return w.count(n, err)
}

// DeferCount passes the underlying io.Writer to fn and counts the bytes
// fn reports.  It avoids updating the counter once per nested Write when
// formatting deeply nested values.
func (w *CountingWriter) DeferCount(fn WriteOp) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.count(fn(w.w))
}

func (w *CountingWriter) count(n int, err error) (int, error) {
	w.n += n
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

// WriteSeq writes open, then each of the n elements produced by elem
// separated by sep, then close.  WriteSeq stops at the first error.
func WriteSeq(w io.Writer, open, sep, close string, n int, elem func(w io.Writer, i int) (int, error)) (int, error) {
	cw := NewCountingWriter(w)
	io.WriteString(cw, open)
	for i := 0; i < n && cw.Err() == nil; i++ {
		if i > 0 {
			io.WriteString(cw, sep)
		}
		cw.DeferCount(func(w io.Writer) (int, error) { return elem(w, i) })
	}
	io.WriteString(cw, close)
	return cw.N(), cw.Err()
}
