package bcrs

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
)

// Scalar is the set of supported element types.
type Scalar = numeric.Scalar

// BlockShape is the scalar extent of one block.
type BlockShape = numeric.BlockShape

// ErrBuild is returned when the row-wise build protocol is violated.
var ErrBuild = errors.New("bcrs: invalid build sequence")

// Matrix is a block sparse matrix in block compressed row storage.
type Matrix[T Scalar] struct {
	shape   BlockShape
	pattern bool

	n, m   int   // block rows and columns
	rowPtr []int // n+1 offsets into cols
	cols   []int
	data   []T // len(cols)*shape.Size(), nil for pattern matrices

	built    int // block rows declared so far
	building bool
}

// NewMatrix returns an empty matrix with the given block shape.
func NewMatrix[T Scalar](shape BlockShape) *Matrix[T] {
	if !shape.Valid() {
		panic(errors.AssertionFailedf("bcrs: invalid block shape %s", shape))
	}
	return &Matrix[T]{shape: shape, rowPtr: []int{0}}
}

// NewPattern returns an empty pattern matrix: it stores the sparsity
// structure only.
func NewPattern[T Scalar](shape BlockShape) *Matrix[T] {
	m := NewMatrix[T](shape)
	m.pattern = true
	return m
}

// Build creates a matrix with n block rows and m block columns whose
// pattern is given by the block columns of each row.
func Build[T Scalar](shape BlockShape, n, m int, rows [][]int) (*Matrix[T], error) {
	if len(rows) != n {
		return nil, errors.Mark(errors.Newf("bcrs: %d row patterns for %d block rows", len(rows), n), ErrBuild)
	}
	a := NewMatrix[T](shape)
	var nnz int
	for _, r := range rows {
		nnz += len(r)
	}
	if err := a.SetSize(n, m, nnz); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := a.BuildRow(i, r); err != nil {
			return nil, err
		}
	}
	if err := a.EndBuild(); err != nil {
		return nil, err
	}
	return a, nil
}

// BlockShape returns the scalar extent of one block.
func (a *Matrix[T]) BlockShape() BlockShape {
	return a.shape
}

// IsPattern reports whether the matrix stores no values.
func (a *Matrix[T]) IsPattern() bool {
	return a.pattern
}

// N returns the number of block rows.
func (a *Matrix[T]) N() int {
	return a.n
}

// M returns the number of block columns.
func (a *Matrix[T]) M() int {
	return a.m
}

// Rows returns the number of scalar rows.
func (a *Matrix[T]) Rows() int {
	return a.n * a.shape.Rows
}

// Cols returns the number of scalar columns.
func (a *Matrix[T]) Cols() int {
	return a.m * a.shape.Cols
}

// NonzeroBlocks returns the number of blocks in the pattern.
func (a *Matrix[T]) NonzeroBlocks() int {
	return len(a.cols)
}

// Nonzeros returns the number of scalars held by the pattern, structural
// zeros inside blocks included.
func (a *Matrix[T]) Nonzeros() int {
	return len(a.cols) * a.shape.Size()
}

// SetSize discards the content and starts building an n x m block matrix.
// nonzeros is the expected number of blocks and only sizes the storage.
func (a *Matrix[T]) SetSize(n, m, nonzeros int) error {
	if n < 0 || m < 0 {
		return errors.Mark(errors.Newf("bcrs: negative size %dx%d", n, m), ErrBuild)
	}
	a.n, a.m = n, m
	nonzeros = max(nonzeros, 0)
	a.rowPtr = make([]int, 1, min(n, nonzeros)+1)
	a.cols = make([]int, 0, nonzeros)
	a.data = nil
	a.built = 0
	a.building = true
	return nil
}

// BuildRow declares the block columns of block row i. Rows must be built
// in order and columns must be strictly ascending.
func (a *Matrix[T]) BuildRow(i int, cols []int) error {
	if !a.building {
		return errors.Mark(errors.New("bcrs: BuildRow outside of a build"), ErrBuild)
	}
	if i != a.built || i >= a.n {
		return errors.Mark(errors.Newf("bcrs: expected block row %d, got %d", a.built, i), ErrBuild)
	}
	prev := -1
	for _, c := range cols {
		if c <= prev || c >= a.m {
			return errors.Mark(errors.Newf("bcrs: block row %d: invalid column %d", i, c), ErrBuild)
		}
		prev = c
	}
	a.cols = append(a.cols, cols...)
	a.rowPtr = append(a.rowPtr, len(a.cols))
	a.built++
	return nil
}

// EndBuild completes the pattern and allocates zeroed block storage.
func (a *Matrix[T]) EndBuild() error {
	if !a.building {
		return errors.Mark(errors.New("bcrs: EndBuild outside of a build"), ErrBuild)
	}
	if a.built != a.n {
		return errors.Mark(errors.Newf("bcrs: %d of %d block rows built", a.built, a.n), ErrBuild)
	}
	a.building = false
	if !a.pattern {
		a.data = make([]T, len(a.cols)*a.shape.Size())
	}
	return nil
}

// RowPattern returns the ascending block columns of block row i. The slice
// must not be modified.
func (a *Matrix[T]) RowPattern(i int) []int {
	return a.cols[a.rowPtr[i]:a.rowPtr[i+1]]
}

// find returns the storage index of block (i, j).
func (a *Matrix[T]) find(i, j int) (int, bool) {
	if a.building || i < 0 || i >= a.n {
		return 0, false
	}
	lo, hi := a.rowPtr[i], a.rowPtr[i+1]
	k := lo + sort.SearchInts(a.cols[lo:hi], j)
	if k < hi && a.cols[k] == j {
		return k, true
	}
	return 0, false
}

// Exists reports whether block (i, j) is part of the pattern.
func (a *Matrix[T]) Exists(i, j int) bool {
	_, ok := a.find(i, j)
	return ok
}

// Block returns the row-major values of block (i, j). It returns nil if the
// block is not in the pattern or the matrix is a pattern matrix. The slice
// aliases the matrix storage.
func (a *Matrix[T]) Block(i, j int) []T {
	k, ok := a.find(i, j)
	if !ok || a.pattern {
		return nil
	}
	size := a.shape.Size()
	return a.data[k*size : (k+1)*size : (k+1)*size]
}

// At returns the scalar at row r, column c. Positions outside the pattern
// read as zero.
func (a *Matrix[T]) At(r, c int) T {
	var zero T
	b := a.Block(r/a.shape.Rows, c/a.shape.Cols)
	if b == nil {
		return zero
	}
	return b[(r%a.shape.Rows)*a.shape.Cols+c%a.shape.Cols]
}

// Set stores v at scalar position (r, c). The enclosing block must be part
// of the pattern.
func (a *Matrix[T]) Set(r, c int, v T) error {
	b := a.Block(r/a.shape.Rows, c/a.shape.Cols)
	if b == nil {
		return errors.Newf("bcrs: position (%d, %d) is not in the pattern", r, c)
	}
	b[(r%a.shape.Rows)*a.shape.Cols+c%a.shape.Cols] = v
	return nil
}
