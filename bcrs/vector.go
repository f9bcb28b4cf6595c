package bcrs

import "github.com/cockroachdb/errors"

// Vector is a dense vector of fixed size blocks.
type Vector[T Scalar] struct {
	blockSize int
	data      []T
}

// NewVector returns a vector of n zero blocks of the given size.
func NewVector[T Scalar](blockSize, n int) *Vector[T] {
	if blockSize <= 0 {
		panic(errors.AssertionFailedf("bcrs: invalid block size %d", blockSize))
	}
	return &Vector[T]{blockSize: blockSize, data: make([]T, blockSize*n)}
}

// VectorOf returns a vector over a copy of scalars. The number of scalars
// must be a multiple of blockSize.
func VectorOf[T Scalar](blockSize int, scalars ...T) (*Vector[T], error) {
	if blockSize <= 0 || len(scalars)%blockSize != 0 {
		return nil, errors.Newf("bcrs: %d scalars do not form blocks of size %d", len(scalars), blockSize)
	}
	v := NewVector[T](blockSize, len(scalars)/blockSize)
	copy(v.data, scalars)
	return v, nil
}

// BlockSize returns the number of scalars per block.
func (v *Vector[T]) BlockSize() int {
	return v.blockSize
}

// Len returns the number of blocks.
func (v *Vector[T]) Len() int {
	return len(v.data) / v.blockSize
}

// Resize sets the number of blocks to n and zeroes the content.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Newf("bcrs: negative vector size %d", n)
	}
	v.data = make([]T, n*v.blockSize)
	return nil
}

// Block returns the values of block i. The slice aliases the vector.
func (v *Vector[T]) Block(i int) []T {
	return v.data[i*v.blockSize : (i+1)*v.blockSize : (i+1)*v.blockSize]
}

// Scalars returns all values in order. The slice aliases the vector.
func (v *Vector[T]) Scalars() []T {
	return v.data
}
