package bcrs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestVector(t *testing.T) {
	v := NewVector[float64](3, 2)
	require.Equal(t, 3, v.BlockSize())
	require.Equal(t, 2, v.Len())
	copy(v.Block(1), []float64{4, 5, 6})
	require.Equal(t, []float64{0, 0, 0, 4, 5, 6}, v.Scalars())

	require.NoError(t, v.Resize(1))
	require.Equal(t, []float64{0, 0, 0}, v.Scalars())
	require.Error(t, v.Resize(-1))

	_, err := VectorOf(2, 1, 2, 3)
	require.Error(t, err)
	w, err := VectorOf[float64](2, 1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, w.Block(1))
}

func TestVecDense(t *testing.T) {
	x := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	v, err := FromVector(x, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	require.True(t, mat.Equal(x, VecDense(v)))

	_, err = FromVector(x, 3)
	require.Error(t, err)
	require.Nil(t, VecDense(NewVector[float64](1, 0)))
}
