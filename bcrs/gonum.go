package bcrs

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Dense expands a real matrix into a gonum dense matrix. Positions outside
// the pattern are zero. It returns nil for a matrix without rows or
// columns, which gonum cannot represent.
func Dense(a *Matrix[float64]) *mat.Dense {
	if a.Rows() == 0 || a.Cols() == 0 {
		return nil
	}
	d := mat.NewDense(a.Rows(), a.Cols(), nil)
	if a.pattern {
		return d
	}
	br, bc := a.shape.Rows, a.shape.Cols
	for i := 0; i < a.n; i++ {
		for _, j := range a.RowPattern(i) {
			b := a.Block(i, j)
			for r := 0; r < br; r++ {
				for c := 0; c < bc; c++ {
					d.Set(i*br+r, j*bc+c, b[r*bc+c])
				}
			}
		}
	}
	return d
}

// FromDense builds a block matrix from a gonum matrix. A block is part of
// the pattern if any of its scalars is nonzero. The dimensions of d must be
// multiples of the block shape.
func FromDense(d mat.Matrix, shape BlockShape) (*Matrix[float64], error) {
	rows, cols := d.Dims()
	if !shape.Valid() || rows%shape.Rows != 0 || cols%shape.Cols != 0 {
		return nil, errors.Newf("bcrs: %dx%d matrix does not split into %s blocks", rows, cols, shape)
	}
	n, m := rows/shape.Rows, cols/shape.Cols
	pattern := make([][]int, n)
	for i := 0; i < n; i++ {
		pattern[i] = []int{}
		for j := 0; j < m; j++ {
			if blockNonzero(d, shape, i, j) {
				pattern[i] = append(pattern[i], j)
			}
		}
	}
	a, err := Build[float64](shape, n, m, pattern)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for _, j := range a.RowPattern(i) {
			b := a.Block(i, j)
			for r := 0; r < shape.Rows; r++ {
				for c := 0; c < shape.Cols; c++ {
					b[r*shape.Cols+c] = d.At(i*shape.Rows+r, j*shape.Cols+c)
				}
			}
		}
	}
	return a, nil
}

func blockNonzero(d mat.Matrix, shape BlockShape, i, j int) bool {
	for r := 0; r < shape.Rows; r++ {
		for c := 0; c < shape.Cols; c++ {
			if d.At(i*shape.Rows+r, j*shape.Cols+c) != 0 {
				return true
			}
		}
	}
	return false
}

// VecDense copies a real vector into a gonum vector. It returns nil for an
// empty vector.
func VecDense(v *Vector[float64]) *mat.VecDense {
	if len(v.data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(v.data), append([]float64(nil), v.data...))
}

// FromVector copies a gonum vector into a block vector.
func FromVector(x mat.Vector, blockSize int) (*Vector[float64], error) {
	s := make([]float64, x.Len())
	for i := range s {
		s[i] = x.AtVec(i)
	}
	return VectorOf(blockSize, s...)
}
