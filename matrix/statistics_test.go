package matrix_test

import (
	"testing"

	"github.com/katalvlaran/simul8/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At fallback.
type hide struct{ matrix.Matrix }

func TestColumnAndRowMeans(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	cm, err := matrix.ColumnMeans(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, cm)

	// fast path and fallback agree
	cmSlow, err := matrix.ColumnMeans(hide{m})
	require.NoError(t, err)
	assert.Equal(t, cm, cmSlow)

	rm, err := matrix.RowMeans(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5, 5.5}, rm)
}

func TestMeansNil(t *testing.T) {
	_, err := matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.RowMeans(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateShape(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 4)
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.NoError(t, matrix.ValidateShape(a, 2, 3))
	require.ErrorIs(t, matrix.ValidateShape(a, 3, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 1), matrix.ErrNilMatrix)
}
