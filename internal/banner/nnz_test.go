package banner

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/stretchr/testify/require"
)

func TestCalculateNNZ(t *testing.T) {
	tests := []struct {
		name      string
		dims      Dimensions
		shape     numeric.BlockShape
		structure Structure
		want      Blocks
	}{
		{"general", Dimensions{4, 4, 6}, numeric.Scalar1x1, General, Blocks{4, 4, 6}},
		{"symmetric", Dimensions{4, 4, 6}, numeric.Scalar1x1, Symmetric, Blocks{4, 4, 8}},
		{"hermitian", Dimensions{4, 4, 6}, numeric.Scalar1x1, Hermitian, Blocks{4, 4, 8}},
		{"skew-symmetric", Dimensions{4, 4, 6}, numeric.Scalar1x1, SkewSymmetric, Blocks{4, 4, 12}},
		{"blocked general", Dimensions{6, 4, 12}, numeric.BlockShape{Rows: 3, Cols: 2}, General, Blocks{2, 2, 2}},
		{"blocked symmetric", Dimensions{4, 4, 6}, numeric.BlockShape{Rows: 2, Cols: 2}, Symmetric, Blocks{2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateNNZ(tt.dims, tt.shape, tt.structure)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateNNZErrors(t *testing.T) {
	tests := []struct {
		name      string
		dims      Dimensions
		shape     numeric.BlockShape
		structure Structure
	}{
		{"rows not divisible", Dimensions{5, 4, 4}, numeric.BlockShape{Rows: 2, Cols: 2}, General},
		{"cols not divisible", Dimensions{4, 5, 4}, numeric.BlockShape{Rows: 2, Cols: 2}, General},
		{"invalid shape", Dimensions{4, 4, 4}, numeric.BlockShape{}, General},
		{"unknown structure", Dimensions{4, 4, 4}, numeric.Scalar1x1, Structure(9)},
		{"too few symmetric entries", Dimensions{4, 4, 1}, numeric.Scalar1x1, Symmetric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateNNZ(tt.dims, tt.shape, tt.structure)
			require.True(t, errors.Is(err, errs.Format), "got %v", err)
		})
	}
}
