package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

// Writer emits text lines. Once a write fails every later call is a no-op
// and Err reports the failure.
type Writer struct {
	w   *bufio.Writer
	pos int64
	err error
}

// NewWriter creates a line writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// WriteString writes s verbatim.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	n, err := w.w.WriteString(s)
	w.pos += int64(n)
	if err != nil {
		w.err = errs.WrapIO(err, "writing at byte %d", w.pos)
	}
}

// Line writes the tokens separated by single spaces and terminated by a
// line feed.
func (w *Writer) Line(tokens ...string) {
	w.WriteString(strings.Join(tokens, " "))
	w.WriteString("\n")
}

// Printf writes a formatted string.
func (w *Writer) Printf(format string, args ...interface{}) {
	w.WriteString(fmt.Sprintf(format, args...))
}

// Comment writes a comment line.
func (w *Writer) Comment(text string) {
	w.WriteString(string(CommentMarker) + " " + text + "\n")
}

// Flush flushes buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = errs.WrapIO(err, "flushing output")
	}
	return w.err
}
