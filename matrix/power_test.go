package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sic/matrix"
	"github.com/stretchr/testify/require"
)

func ones(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1
		}
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestPowerIterationAllOnes: the all-ones n×n matrix has λ_max = n exactly,
// and the uniform start vector is already its eigenvector.
func TestPowerIterationAllOnes(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ep, err := matrix.PowerIteration(ones(t, n), matrix.DefaultPowerSteps)
			require.NoError(t, err)
			require.InDelta(t, float64(n), ep.Value, 1e-9)
			require.InDelta(t, 1.0, matrix.Norm2(ep.Vector), 1e-12)
		})
	}
}

// TestPowerIterationDiagonal: the estimator approaches the largest diagonal entry.
func TestPowerIterationDiagonal(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{3, 0},
		{0, 1},
	})
	require.NoError(t, err)

	ep, err := matrix.PowerIteration(m, matrix.DefaultPowerSteps)
	require.NoError(t, err)
	require.InDelta(t, 3.0, ep.Value, 1e-9)
}

// TestPowerIterationZeroMatrix exercises the zero-norm guard: no NaN appears.
func TestPowerIterationZeroMatrix(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	ep, err := matrix.PowerIteration(m, matrix.DefaultPowerSteps)
	require.NoError(t, err)
	require.Zero(t, ep.Value)
	for _, x := range ep.Vector {
		require.Zero(t, x)
	}
}

// TestPowerIterationDegenerate covers empty input, zero steps and bad arguments.
func TestPowerIterationDegenerate(t *testing.T) {
	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)
	ep, err := matrix.PowerIteration(empty, matrix.DefaultPowerSteps)
	require.NoError(t, err)
	require.Zero(t, ep.Value)
	require.Nil(t, ep.Vector)

	ep, err = matrix.PowerIteration(ones(t, 2), 0)
	require.NoError(t, err)
	require.Zero(t, ep.Value)

	_, err = matrix.PowerIteration(ones(t, 2), -1)
	require.ErrorIs(t, err, matrix.ErrBadSteps)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.PowerIteration(rect, 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.PowerIteration(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVecAndValidators covers MatVec shapes and symmetry validation.
func TestMatVecAndValidators(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	require.NoError(t, m.Set(0, 1, 5))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-9), matrix.ErrAsymmetry)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
