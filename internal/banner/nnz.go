package banner

import (
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
)

// Blocks are the block level extents of a matrix.
type Blocks struct {
	Rows, Cols int
	Entries    int // expected number of nonzero blocks
}

// CalculateNNZ converts scalar dimensions into block dimensions and derives
// the number of nonzero blocks. Symmetric and hermitian files store the
// lower triangle with the diagonal once, skew-symmetric files the strict
// lower triangle.
func CalculateNNZ(d Dimensions, shape numeric.BlockShape, structure Structure) (Blocks, error) {
	var b Blocks
	if !shape.Valid() {
		return b, errs.Formatf("invalid block shape %s", shape)
	}
	if d.Rows%shape.Rows != 0 {
		return b, errs.Formatf("%d rows are not divisible by block rows %d", d.Rows, shape.Rows)
	}
	if d.Cols%shape.Cols != 0 {
		return b, errs.Formatf("%d columns are not divisible by block columns %d", d.Cols, shape.Cols)
	}
	b.Rows = d.Rows / shape.Rows
	b.Cols = d.Cols / shape.Cols

	size := shape.Size()
	switch structure {
	case General:
		b.Entries = d.Entries / size
	case SkewSymmetric:
		b.Entries = 2 * d.Entries / size
	case Symmetric, Hermitian:
		if 2*d.Entries < d.Rows {
			return b, errs.Formatf("%d entries cannot hold the diagonal of %d rows", d.Entries, d.Rows)
		}
		b.Entries = (2*d.Entries - d.Rows) / size
	default:
		return b, errs.Formatf("unsupported structure %s", structure)
	}
	return b, nil
}
