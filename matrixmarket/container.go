package matrixmarket

import (
	"github.com/robert-malhotra/go-matrixmarket/internal/banner"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
)

// Scalar is the set of element types that can be stored.
type Scalar = numeric.Scalar

// BlockShape is the scalar extent of one block.
type BlockShape = numeric.BlockShape

// Kind is the value type field of the banner.
type Kind = numeric.Kind

// Value types.
const (
	Integer = numeric.Integer
	Real    = numeric.Real
	Complex = numeric.Complex
	Pattern = numeric.Pattern
)

// Header is a parsed banner line.
type Header = banner.Header

// Info is everything in front of the first data line.
type Info = banner.Info

// MatrixSink is a block sparse matrix being read. The sparsity pattern is
// declared row by row before any value is written.
type MatrixSink[T Scalar] interface {
	BlockShape() BlockShape
	IsPattern() bool
	// SetSize discards any content and prepares a rows x cols block
	// matrix with about nonzeros blocks.
	SetSize(rows, cols, nonzeros int) error
	// BuildRow declares the ascending block columns of block row row.
	// Rows are declared in order.
	BuildRow(row int, cols []int) error
	EndBuild() error
	// Block returns the row-major values of a block of the pattern.
	Block(row, col int) []T
}

// MatrixSource is a block sparse matrix being written.
type MatrixSource[T Scalar] interface {
	BlockShape() BlockShape
	IsPattern() bool
	// N and M return the number of block rows and block columns.
	N() int
	M() int
	NonzeroBlocks() int
	// RowPattern returns the ascending block columns of block row i.
	RowPattern(i int) []int
	Block(row, col int) []T
}

// VectorSink is a block vector being read.
type VectorSink[T Scalar] interface {
	BlockSize() int
	// Resize sets the number of blocks.
	Resize(blocks int) error
	Block(i int) []T
}

// VectorSource is a block vector being written.
type VectorSource[T Scalar] interface {
	BlockSize() int
	Len() int
	Block(i int) []T
}

// Traits are the properties of a container that decide how it is written.
type Traits struct {
	Sparse  bool
	Shape   BlockShape
	Kind    Kind
	Pattern bool
}

// Header returns the banner describing a container with these traits.
func (t Traits) Header() Header {
	h := banner.Header{
		Storage:   banner.Array,
		Value:     t.Kind,
		Structure: banner.General,
	}
	if t.Sparse {
		h.Storage = banner.Coordinate
	}
	return h
}

// MatrixTraits returns the traits of a sparse matrix.
func MatrixTraits[T Scalar](m MatrixSource[T]) Traits {
	t := Traits{
		Sparse: true,
		Shape:  m.BlockShape(),
		Kind:   numeric.KindOf[T](),
	}
	if m.IsPattern() {
		t.Pattern = true
		t.Kind = numeric.Pattern
	}
	return t
}

// VectorTraits returns the traits of a block vector.
func VectorTraits[T Scalar](v VectorSource[T]) Traits {
	return Traits{
		Shape: BlockShape{Rows: v.BlockSize(), Cols: 1},
		Kind:  numeric.KindOf[T](),
	}
}
