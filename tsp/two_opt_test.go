package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
)

// perimeter is the optimal tour length of circle(n).
func perimeter(n int) float64 {
	return float64(n) * 2 * math.Sin(math.Pi/float64(n))
}

func TestTwoOpt_UncrossesCircle(t *testing.T) {
	m := circle(t, 8)
	scrambled := []int{0, 4, 1, 6, 3, 7, 2, 5, 0}
	orig := tsp.CopyTour(scrambled)

	tour, cost, err := tsp.TwoOpt(m, scrambled, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, orig, scrambled, "input tour is not modified")
	requireTour(t, tour, 8, startV)
	require.InDelta(t, perimeter(8), cost, 1e-8)

	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 0}, tour)
}

func TestTwoOpt_MaxIters(t *testing.T) {
	m := circle(t, 8)
	scrambled := []int{0, 4, 1, 6, 3, 7, 2, 5, 0}
	before, err := tsp.TourCost(m, scrambled)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.TwoOptMaxIters = 1
	tour, cost, err := tsp.TwoOpt(m, scrambled, opts)
	require.NoError(t, err)
	requireTour(t, tour, 8, startV)
	require.Less(t, cost, before)

	recomputed, err := tsp.TourCost(m, tour)
	require.NoError(t, err)
	require.InDelta(t, recomputed, cost, 1e-9)
}

func TestTwoOpt_SmallInstanceUnchanged(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	tour, cost, err := tsp.TwoOpt(m, []int{0, 2, 1, 0}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 0}, tour)
	require.Equal(t, 6.0, cost)
}

func TestTwoOpt_Errors(t *testing.T) {
	asym := mustDense(t, [][]float64{{0, 1, 2, 3}, {1, 0, 1, 1}, {2, 1, 0, 1}, {9, 1, 1, 0}})
	_, _, err := tsp.TwoOpt(asym, []int{0, 1, 2, 3, 0}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrAsymmetry)

	_, _, err = tsp.TwoOpt(example5(t), []int{0, 1, 2, 0}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	opts := tsp.DefaultOptions()
	opts.Eps = -1
	_, _, err = tsp.TwoOpt(example5(t), []int{0, 1, 2, 3, 4, 0}, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOption)
}
