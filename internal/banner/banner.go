package banner

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
)

// Magic is the first token of a MatrixMarket banner.
const Magic = "%%MatrixMarket"

// ObjectMatrix is the only object type the format defines.
const ObjectMatrix = "matrix"

// Storage is the storage scheme of a file.
type Storage uint8

// Storage schemes.
const (
	Coordinate Storage = iota
	Array
)

func (s Storage) String() string {
	switch s {
	case Coordinate:
		return "coordinate"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("Storage(%d)", uint8(s))
	}
}

// Structure describes which part of the matrix is stored.
type Structure uint8

// Structure kinds.
const (
	General Structure = iota
	Symmetric
	SkewSymmetric
	Hermitian
)

func (s Structure) String() string {
	switch s {
	case General:
		return "general"
	case Symmetric:
		return "symmetric"
	case SkewSymmetric:
		return "skew-symmetric"
	case Hermitian:
		return "hermitian"
	default:
		return fmt.Sprintf("Structure(%d)", uint8(s))
	}
}

// Header is the decoded banner.
type Header struct {
	Storage   Storage
	Value     numeric.Kind
	Structure Structure
}

// Default returns the header assumed for files without a valid banner.
func Default(vector bool) Header {
	h := Header{Storage: Coordinate, Value: numeric.Real, Structure: General}
	if vector {
		h.Storage = Array
	}
	return h
}

func (h Header) String() string {
	return fmt.Sprintf("%s %s %s", h.Storage, h.Value, h.Structure)
}

// Banner returns the banner line without the terminator.
func (h Header) Banner() string {
	return fmt.Sprintf("%s %s %s", Magic, ObjectMatrix, h)
}

// ParseBanner decodes the banner line at the cursor. Every failure is
// marked as a banner error; on success the cursor is at the start of the
// next line.
func ParseBanner(s *scan.Scanner) (Header, error) {
	var h Header

	tok, err := s.Token()
	if err != nil {
		return h, errs.Bannerf("missing banner")
	}
	if tok != Magic {
		return h, errs.Bannerf("expected %q, got %q", Magic, tok)
	}

	tok, err = nextField(s, "object")
	if err != nil {
		return h, err
	}
	if tok != ObjectMatrix {
		return h, errs.Bannerf("expected object %q, got %q", ObjectMatrix, tok)
	}

	if tok, err = nextField(s, "storage"); err != nil {
		return h, err
	}
	switch tok = strings.ToLower(tok); tok[0] {
	case 'a':
		h.Storage = Array
	case 'c':
		h.Storage = Coordinate
	default:
		return h, errs.Bannerf("unknown storage %q", tok)
	}
	if tok != h.Storage.String() {
		return h, errs.Bannerf("unknown storage %q", tok)
	}

	if tok, err = nextField(s, "value type"); err != nil {
		return h, err
	}
	switch tok = strings.ToLower(tok); tok[0] {
	case 'i':
		h.Value = numeric.Integer
	case 'r':
		h.Value = numeric.Real
	case 'c':
		h.Value = numeric.Complex
	case 'p':
		h.Value = numeric.Pattern
	default:
		return h, errs.Bannerf("unknown value type %q", tok)
	}
	if tok != h.Value.String() {
		return h, errs.Bannerf("unknown value type %q", tok)
	}

	if tok, err = nextField(s, "structure"); err != nil {
		return h, err
	}
	switch tok = strings.ToLower(tok); tok[0] {
	case 'g':
		h.Structure = General
	case 'h':
		h.Structure = Hermitian
	case 's':
		if len(tok) < 2 {
			return h, errs.Bannerf("unknown structure %q", tok)
		}
		switch tok[1] {
		case 'y':
			h.Structure = Symmetric
		case 'k':
			h.Structure = SkewSymmetric
		default:
			return h, errs.Bannerf("unknown structure %q", tok)
		}
	default:
		return h, errs.Bannerf("unknown structure %q", tok)
	}
	if tok != h.Structure.String() {
		return h, errs.Bannerf("unknown structure %q", tok)
	}

	if !s.LineBoundary() && !s.EOF() {
		return h, errs.Bannerf("unexpected content after structure: %q", strings.TrimSpace(s.RestOfLine()))
	}
	return h, nil
}

// nextField reads the next banner token, which must be on the same line.
func nextField(s *scan.Scanner, what string) (string, error) {
	if s.LineBoundary() {
		return "", errs.Bannerf("premature end of banner, expected %s", what)
	}
	tok, err := s.Token()
	if err != nil {
		return "", errs.Bannerf("premature end of banner, expected %s", what)
	}
	return tok, nil
}

// Write emits the banner line.
func Write(w *scan.Writer, h Header) {
	w.Line(h.Banner())
}
