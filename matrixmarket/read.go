package matrixmarket

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-matrixmarket/internal/assemble"
	"github.com/robert-malhotra/go-matrixmarket/internal/banner"
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
)

// ReadHeader reads the banner, the comments and the dimension line.
// vector selects the defaults used when the banner is missing and whether
// an entry count is expected.
func ReadHeader(r io.Reader, vector bool, opts ...Option) (*Info, error) {
	o := newOptions(opts)
	s, err := scan.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return banner.Read(s, vector, o.logger)
}

// ReadMatrix replaces the content of m with the matrix read from r. The
// dimensions must be multiples of m's block shape. Only coordinate
// storage with general structure can be read; if an entry occurs more than
// once, the first one wins.
func ReadMatrix[T Scalar](r io.Reader, m MatrixSink[T], opts ...Option) error {
	o := newOptions(opts)
	s, err := scan.ReadAll(r)
	if err != nil {
		return err
	}
	info, err := banner.Read(s, false, o.logger)
	if err != nil {
		return err
	}
	if info.Header.Storage != banner.Coordinate {
		return errs.Unsupportedf("%s storage is not supported for sparse matrices", info.Header.Storage)
	}
	shape := m.BlockShape()
	checkAnnotation(o.logger, info.Blocked, shape)

	blocks, err := banner.CalculateNNZ(info.Dims, shape, info.Header.Structure)
	if err != nil {
		return err
	}
	stats, err := assemble.Assemble[T](s, info.Header, info.Dims, blocks, m, o.logger)
	if err != nil {
		return err
	}
	o.logger.WithField("action", "matrixmarket_read_matrix").
		WithField("entries", stats.Entries).
		WithField("blocks", stats.Blocks).
		Debug("matrix read")
	return nil
}

// ReadVector replaces the content of v with the vector read from r, which
// must be in array storage with a single column.
func ReadVector[T Scalar](r io.Reader, v VectorSink[T], opts ...Option) error {
	o := newOptions(opts)
	s, err := scan.ReadAll(r)
	if err != nil {
		return err
	}
	info, err := banner.Read(s, true, o.logger)
	if err != nil {
		return err
	}
	h := info.Header
	if h.Storage != banner.Array {
		return errs.Formatf("vectors must use array storage, got %s", h.Storage)
	}
	if h.Value == numeric.Pattern {
		return errs.Formatf("pattern is not a valid value type for array storage")
	}
	if info.Dims.Cols != 1 {
		return errs.Formatf("vectors must have exactly one column, got %d", info.Dims.Cols)
	}
	bs := v.BlockSize()
	checkAnnotation(o.logger, info.Blocked, BlockShape{Rows: bs, Cols: 1})
	if info.Dims.Rows%bs != 0 {
		return errs.Formatf("%d rows cannot be split into blocks of size %d", info.Dims.Rows, bs)
	}
	if info.Dims.Rows > s.Remaining() {
		return errs.Formatf("line %d: %d values declared but only %d bytes of input remain",
			s.Line(), info.Dims.Rows, s.Remaining())
	}
	if err := v.Resize(info.Dims.Rows / bs); err != nil {
		return errors.Wrap(err, "resizing vector")
	}

	tokens := make([]string, h.Value.Tokens())
	for i := 0; i < info.Dims.Rows/bs; i++ {
		block := v.Block(i)
		for j := range block {
			s.SkipComments(nil)
			for k := range tokens {
				if tokens[k], err = s.Token(); err != nil {
					return errs.WrapFormat(err, "line %d: reading entry %d of %d", s.Line(), i*bs+j+1, info.Dims.Rows)
				}
			}
			x, err := numeric.Parse[T](h.Value, tokens)
			if err != nil {
				return errors.Wrapf(err, "line %d", s.Line())
			}
			block[j] = x
		}
	}
	return nil
}

// checkAnnotation warns if the file was written with a different block
// shape than the destination has. The destination's shape is used.
func checkAnnotation(logger logrus.FieldLogger, annotated, shape BlockShape) {
	if !annotated.Valid() || annotated == shape {
		return
	}
	logger.WithField("action", "matrixmarket_block_mismatch").
		WithField("file", annotated.String()).
		WithField("container", shape.String()).
		Warn("block shape annotation differs from destination, using destination shape")
}
