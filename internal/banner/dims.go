package banner

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
	"github.com/sirupsen/logrus"
)

// AnnotationKeyword introduces the block shape comment.
const AnnotationKeyword = "blocked"

// legacyAnnotationPrefix precedes the keyword in files written by older
// ISTL based tools.
const legacyAnnotationPrefix = "ISTL_STRUCT"

// Dimensions are the scalar extents declared on the dimension line.
// Entries is only set for coordinate matrices.
type Dimensions struct {
	Rows, Cols, Entries int
}

// Info is everything read before the first data line.
type Info struct {
	Header    Header
	Defaulted bool // no valid banner, Header is the default
	Dims      Dimensions
	Blocked   numeric.BlockShape // zero if the file has no annotation
	Comments  []string
}

// Read parses the banner, comment block and dimension line. vector selects
// the default header and whether an entry count is expected. When the
// banner is invalid the failure is logged, the default header is used and
// parsing restarts at the beginning of the input.
func Read(s *scan.Scanner, vector bool, logger logrus.FieldLogger) (*Info, error) {
	info := &Info{}

	h, err := ParseBanner(s)
	switch {
	case err == nil:
		info.Header = h
	case errors.Is(err, errs.Banner):
		info.Header = Default(vector)
		info.Defaulted = true
		logger.WithField("action", "matrixmarket_banner_fallback").
			WithError(err).
			Warnf("first line is not a valid banner, assuming %q", info.Header.Banner())
		s.Rewind()
	default:
		return nil, err
	}

	s.SkipComments(func(line string) {
		if shape, ok := ParseAnnotation(line); ok {
			info.Blocked = shape
			return
		}
		info.Comments = append(info.Comments, line)
	})

	if info.Dims.Rows, err = readDim(s, "row count"); err != nil {
		return nil, err
	}
	if info.Dims.Cols, err = readDim(s, "column count"); err != nil {
		return nil, err
	}
	if !vector && info.Header.Storage == Coordinate {
		if info.Dims.Entries, err = readDim(s, "entry count"); err != nil {
			return nil, err
		}
	}
	s.SkipLine()
	return info, nil
}

// MaxDimension bounds every count of the dimension line. Indices in
// MatrixMarket files are 32-bit signed integers.
const MaxDimension = math.MaxInt32

// readDim reads one count of the dimension line. The count must follow on
// the same line.
func readDim(s *scan.Scanner, what string) (int, error) {
	if s.LineBoundary() {
		return 0, errs.Formatf("line %d: premature end of line, expected %s", s.Line()-1, what)
	}
	v, err := s.Uint()
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", what)
	}
	if v > MaxDimension {
		return 0, errs.Formatf("%s %d out of range [0, %d]", what, v, MaxDimension)
	}
	return int(v), nil
}

// ParseAnnotation recognises a block shape comment line such as
// "% blocked 2 3" and returns the shape.
func ParseAnnotation(line string) (numeric.BlockShape, bool) {
	fields := strings.Fields(strings.TrimLeft(strings.TrimSpace(line), string(scan.CommentMarker)))
	if len(fields) > 0 && fields[0] == legacyAnnotationPrefix {
		fields = fields[1:]
	}
	if len(fields) != 3 || fields[0] != AnnotationKeyword {
		return numeric.BlockShape{}, false
	}
	r, err1 := strconv.Atoi(fields[1])
	c, err2 := strconv.Atoi(fields[2])
	shape := numeric.BlockShape{Rows: r, Cols: c}
	if err1 != nil || err2 != nil || !shape.Valid() {
		return numeric.BlockShape{}, false
	}
	return shape, true
}

// WriteAnnotation emits the block shape comment. Nothing is written for
// 1x1 blocks.
func WriteAnnotation(w *scan.Writer, shape numeric.BlockShape) {
	if shape.IsScalar() {
		return
	}
	w.Comment(AnnotationKeyword + " " + strconv.Itoa(shape.Rows) + " " + strconv.Itoa(shape.Cols))
}
