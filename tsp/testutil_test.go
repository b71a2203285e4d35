// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/matrix"
)

const (
	// seedDet is the reproducibility seed of the reference GA run.
	seedDet = int64(42)

	// startV is the canonical origin used across tests.
	startV = 0

	// identityCost5 is the cost of [0 1 2 3 4 | 0] on example5.
	identityCost5 = 24.0

	// optimalCost5 is the brute-force optimum on example5, reached by two
	// distinct cycles (0-1-4-3-2 and 0-2-1-4-3).
	optimalCost5 = 19.0
)

// example5Rows is the 5-city instance from the package docs.
var example5Rows = [][]float64{
	{0, 2, 3, 5, 7},
	{2, 0, 4, 6, 3},
	{3, 4, 0, 7, 5},
	{5, 6, 7, 0, 4},
	{7, 3, 5, 4, 0},
}

// mustDense builds a *matrix.Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// example5 returns a fresh copy of the 5-city instance.
func example5(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustDense(t, example5Rows)
}

// circle returns a symmetric Euclidean instance of n points on a unit
// circle; the optimal tour visits them in index order.
func circle(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ti := 2 * math.Pi * float64(i) / float64(n)
			tj := 2 * math.Pi * float64(j) / float64(n)
			d := math.Hypot(math.Cos(ti)-math.Cos(tj), math.Sin(ti)-math.Sin(tj))
			rows[i][j], rows[j][i] = d, d
		}
	}

	return mustDense(t, rows)
}

// requireTour checks the fixed-origin permutation invariant.
func requireTour(t *testing.T, tour []int, n, start int) {
	t.Helper()
	require.Len(t, tour, n+1)
	require.Equal(t, start, tour[0])
	require.Equal(t, start, tour[n])
	seen := make(map[int]bool, n)
	for _, v := range tour[:n] {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "city %d repeated in %v", v, tour)
		seen[v] = true
	}
	require.Len(t, seen, n)
}

// rngFor returns a fresh deterministic generator.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
