package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspmeta/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	sym, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 4, 0},
	})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-12), matrix.ErrAsymmetry)
	// A loose tolerance accepts the same matrix; the sign of tol is ignored.
	require.NoError(t, matrix.ValidateSymmetric(asym, -2))

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}
