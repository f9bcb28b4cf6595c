package scan

import (
	"io"
	"strconv"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

// CommentMarker starts a comment line.
const CommentMarker = '%'

// Scanner is a text cursor over a fully buffered input.
type Scanner struct {
	buf []byte
	pos int
}

// NewScanner creates a scanner over data. The slice is not copied.
func NewScanner(data []byte) *Scanner {
	return &Scanner{buf: data}
}

// ReadAll reads r to completion and returns a scanner over its content.
func ReadAll(r io.Reader) (*Scanner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.WrapIO(err, "reading input")
	}
	return NewScanner(data), nil
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Seek moves the cursor to the given byte offset, clamped to the input.
func (s *Scanner) Seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(s.buf):
		pos = len(s.buf)
	}
	s.pos = pos
}

// Rewind moves the cursor back to the start of the input.
func (s *Scanner) Rewind() {
	s.pos = 0
}

// Remaining returns the number of bytes after the cursor.
func (s *Scanner) Remaining() int {
	return len(s.buf) - s.pos
}

// EOF reports whether the input is exhausted.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.buf)
}

// Line returns the 1-based line number of the cursor.
func (s *Scanner) Line() int {
	return s.lineAt(s.pos)
}

func (s *Scanner) lineAt(pos int) int {
	n := 1
	for _, c := range s.buf[:pos] {
		if c == '\n' {
			n++
		}
	}
	return n
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isSpace(c byte) bool {
	return isBlank(c) || c == '\n' || c == '\v' || c == '\f'
}

// peek returns the next byte without consuming it.
func (s *Scanner) peek() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.pos], true
}

// skipBlanks consumes blanks up to, but not including, the next
// non-blank byte.
func (s *Scanner) skipBlanks() {
	for s.pos < len(s.buf) && isBlank(s.buf[s.pos]) {
		s.pos++
	}
}

// LineBoundary consumes blanks and reports whether the cursor then stands on
// a line terminator. The terminator is consumed when present. It returns
// false at the end of the input.
func (s *Scanner) LineBoundary() bool {
	s.skipBlanks()
	c, ok := s.peek()
	if !ok || c != '\n' {
		return false
	}
	s.pos++
	return true
}

// SkipLine discards everything up to and including the next line terminator.
func (s *Scanner) SkipLine() {
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		s.pos++
		if c == '\n' {
			return
		}
	}
}

// RestOfLine returns the remainder of the current line without the
// terminator and advances past it.
func (s *Scanner) RestOfLine() string {
	start := s.pos
	s.SkipLine()
	end := s.pos
	if end > start && s.buf[end-1] == '\n' {
		end--
	}
	return string(s.buf[start:end])
}

// SkipComments consumes one line boundary, then discards every following
// line that is blank or whose first non-blank character is the comment
// marker. The cursor is left on the first substantive character. If fn is
// not nil it is called with the text of every comment line, marker
// included.
func (s *Scanner) SkipComments(fn func(line string)) {
	s.LineBoundary()
	for {
		s.skipBlanks()
		c, ok := s.peek()
		if !ok {
			return
		}
		switch c {
		case '\n':
			s.pos++
		case CommentMarker:
			line := s.RestOfLine()
			if fn != nil {
				fn(line)
			}
		default:
			return
		}
	}
}

// Token skips any whitespace, line terminators included, and returns the
// next whitespace delimited token. At the end of the input it returns
// io.ErrUnexpectedEOF.
func (s *Scanner) Token() (string, error) {
	s.skipSpace()
	if s.pos >= len(s.buf) {
		return "", io.ErrUnexpectedEOF
	}
	start := s.pos
	for s.pos < len(s.buf) && !isSpace(s.buf[s.pos]) {
		s.pos++
	}
	return string(s.buf[start:s.pos]), nil
}

// skipSpace consumes whitespace and returns the resulting position.
func (s *Scanner) skipSpace() int {
	for s.pos < len(s.buf) && isSpace(s.buf[s.pos]) {
		s.pos++
	}
	return s.pos
}

// PeekToken returns the next token without consuming it.
func (s *Scanner) PeekToken() (string, error) {
	pos := s.pos
	tok, err := s.Token()
	s.pos = pos
	return tok, err
}

// Int reads a signed decimal integer token.
func (s *Scanner) Int() (int64, error) {
	at := s.skipSpace()
	tok, err := s.Token()
	if err != nil {
		return 0, errs.WrapFormat(err, "line %d: expected integer", s.lineAt(at))
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errs.Formatf("line %d: invalid integer %q", s.lineAt(at), tok)
	}
	return v, nil
}

// Uint reads an unsigned decimal integer token.
func (s *Scanner) Uint() (uint64, error) {
	at := s.skipSpace()
	tok, err := s.Token()
	if err != nil {
		return 0, errs.WrapFormat(err, "line %d: expected unsigned integer", s.lineAt(at))
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, errs.Formatf("line %d: invalid unsigned integer %q", s.lineAt(at), tok)
	}
	return v, nil
}

// Expect reads a token and fails unless it equals want.
func (s *Scanner) Expect(want string) error {
	at := s.skipSpace()
	tok, err := s.Token()
	if err != nil {
		return errs.WrapFormat(err, "line %d: expected %q", s.lineAt(at), want)
	}
	if tok != want {
		return errs.Formatf("line %d: expected %q, got %q", s.lineAt(at), want, tok)
	}
	return nil
}
