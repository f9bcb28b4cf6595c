package scan

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

func TestLineBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		pos      int
	}{
		{"newline", "\nx", true, 1},
		{"spaces then newline", "   \nx", true, 4},
		{"crlf", " \r\nx", true, 3},
		{"token", "  12\n", false, 2},
		{"empty", "", false, 0},
		{"only spaces", "   ", false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner([]byte(tt.input))
			if got := s.LineBoundary(); got != tt.expected {
				t.Errorf("LineBoundary() = %v, want %v", got, tt.expected)
			}
			if s.Pos() != tt.pos {
				t.Errorf("expected pos %d, got %d", tt.pos, s.Pos())
			}
		})
	}
}

func TestSkipComments(t *testing.T) {
	input := "\n% first\n  % indented\n\n   \n%blocked 2 2\n  4 4 3\n"
	s := NewScanner([]byte(input))

	var comments []string
	s.SkipComments(func(line string) {
		comments = append(comments, line)
	})

	want := []string{"% first", "% indented", "%blocked 2 2"}
	if len(comments) != len(want) {
		t.Fatalf("expected %d comments, got %v", len(want), comments)
	}
	for i := range want {
		if comments[i] != want[i] {
			t.Errorf("comment %d: expected %q, got %q", i, want[i], comments[i])
		}
	}

	tok, err := s.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if tok != "4" {
		t.Errorf("expected cursor on %q, got %q", "4", tok)
	}
}

func TestSkipCommentsAtEOF(t *testing.T) {
	s := NewScanner([]byte("% only a comment"))
	s.SkipComments(nil)
	if !s.EOF() {
		t.Errorf("expected EOF, pos %d", s.Pos())
	}
}

func TestToken(t *testing.T) {
	s := NewScanner([]byte("  1 2\n\n 3.5e-1\t-4\n"))
	var got []string
	for {
		tok, err := s.Token()
		if err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		got = append(got, tok)
	}
	want := "1 2 3.5e-1 -4"
	if strings.Join(got, " ") != want {
		t.Errorf("expected %q, got %q", want, strings.Join(got, " "))
	}
}

func TestPeekToken(t *testing.T) {
	s := NewScanner([]byte("neighbours: 1 2"))
	tok, err := s.PeekToken()
	if err != nil {
		t.Fatalf("PeekToken failed: %v", err)
	}
	if tok != "neighbours:" || s.Pos() != 0 {
		t.Errorf("PeekToken = %q at pos %d", tok, s.Pos())
	}
}

func TestIntAndUint(t *testing.T) {
	s := NewScanner([]byte("-7 42 x\n1.5"))

	i, err := s.Int()
	if err != nil || i != -7 {
		t.Fatalf("Int() = %d, %v", i, err)
	}
	u, err := s.Uint()
	if err != nil || u != 42 {
		t.Fatalf("Uint() = %d, %v", u, err)
	}
	if _, err := s.Uint(); !errors.Is(err, errs.Format) {
		t.Errorf("expected format error for %q, got %v", "x", err)
	}
	_, err = s.Int()
	if !errors.Is(err, errs.Format) {
		t.Errorf("expected format error for %q, got %v", "1.5", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected line number in %q", err.Error())
	}
	if _, err := s.Int(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestRewindAndLine(t *testing.T) {
	s := NewScanner([]byte("a\nb\nc"))
	s.SkipLine()
	s.SkipLine()
	if s.Line() != 3 {
		t.Errorf("expected line 3, got %d", s.Line())
	}
	s.Rewind()
	if s.Pos() != 0 || s.Line() != 1 {
		t.Errorf("Rewind left pos %d line %d", s.Pos(), s.Line())
	}
	if s.Remaining() != 5 {
		t.Errorf("expected 5 remaining bytes, got %d", s.Remaining())
	}
	s.Seek(100)
	if !s.EOF() || s.Remaining() != 0 {
		t.Errorf("Seek past end should clamp to EOF")
	}
}

func TestExpect(t *testing.T) {
	s := NewScanner([]byte("neighbours: nope"))
	if err := s.Expect("neighbours:"); err != nil {
		t.Fatalf("Expect failed: %v", err)
	}
	if err := s.Expect("neighbours:"); !errors.Is(err, errs.Format) {
		t.Errorf("expected format error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Line("4", "4", "3")
	w.Comment("blocked 2 2")
	w.Printf("%d %d\n", 1, 2)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	want := "4 4 3\n% blocked 2 2\n1 2\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	if w.Pos() != int64(len(want)) {
		t.Errorf("expected pos %d, got %d", len(want), w.Pos())
	}
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.Line(strings.Repeat("x", 8192))
	w.Line("more")
	err := w.Flush()
	if !errors.Is(err, errs.IO) {
		t.Fatalf("expected i/o error, got %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
