package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
)

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{0, 2, 1, 3, 0}, 4, 0))
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4, 2))

	bad := map[string][]int{
		"short":     {0, 1, 2, 0},
		"open":      {0, 1, 2, 3, 1},
		"repeat":    {0, 1, 1, 3, 0},
		"range":     {0, 1, 2, 4, 0},
		"negative":  {0, -1, 2, 3, 0},
		"wrongHead": {1, 0, 2, 3, 1},
	}
	for name, tour := range bad {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidateTour(tour, 4, 0), tsp.ErrDimensionMismatch)
		})
	}

	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 0}, 2, 3), tsp.ErrStartOutOfRange)
}

func TestValidatePath(t *testing.T) {
	ok := tsp.Path{{From: 1, To: 2}, {From: 2, To: 0}, {From: 0, To: 1}}
	require.NoError(t, tsp.ValidatePath(ok, 3))

	broken := tsp.Path{{From: 1, To: 2}, {From: 0, To: 1}, {From: 1, To: 1}}
	require.ErrorIs(t, tsp.ValidatePath(broken, 3), tsp.ErrDimensionMismatch)

	open := tsp.Path{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}}
	require.ErrorIs(t, tsp.ValidatePath(open, 3), tsp.ErrDimensionMismatch)

	require.ErrorIs(t, tsp.ValidatePath(ok[:2], 3), tsp.ErrDimensionMismatch)
}

func TestTourPathConversions(t *testing.T) {
	tour := []int{0, 3, 1, 2, 0}
	path, err := tsp.TourToPath(tour)
	require.NoError(t, err)
	require.Equal(t, tsp.Path{{From: 0, To: 3}, {From: 3, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, path)

	back, err := tsp.PathToTour(path)
	require.NoError(t, err)
	require.Equal(t, tour, back)

	_, err = tsp.TourToPath([]int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.PathToTour(tsp.Path{{From: 0, To: 1}, {From: 2, To: 0}})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.PathToTour(nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestRotateTourToStart(t *testing.T) {
	tour := []int{2, 0, 3, 1, 2}
	out, err := tsp.RotateTourToStart(tour, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2, 0, 3}, out)
	require.Equal(t, []int{2, 0, 3, 1, 2}, tour, "input is left untouched")

	_, err = tsp.RotateTourToStart(tour, 4)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, err = tsp.RotateTourToStart([]int{0, 1, 2}, 1)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestCanonicalizeOrientationInPlace(t *testing.T) {
	tour := []int{0, 4, 2, 3, 1, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	require.Equal(t, []int{0, 1, 3, 2, 4, 0}, tour)

	// Already canonical: untouched.
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	require.Equal(t, []int{0, 1, 3, 2, 4, 0}, tour)

	require.ErrorIs(t, tsp.CanonicalizeOrientationInPlace([]int{0, 1}), tsp.ErrDimensionMismatch)
}

func TestCopyTourAndDebugString(t *testing.T) {
	require.Nil(t, tsp.CopyTour(nil))
	src := []int{0, 3, 1, 2, 0}
	cp := tsp.CopyTour(src)
	cp[1] = 9
	require.Equal(t, 3, src[1])

	require.Equal(t, "[0 3 1 2 | 0]", tsp.DebugString(src))
	require.Equal(t, "[]", tsp.DebugString(nil))
}

func TestTourCost(t *testing.T) {
	m := example5(t)
	cost, err := tsp.TourCost(m, []int{0, 1, 2, 3, 4, 0})
	require.NoError(t, err)
	require.Equal(t, identityCost5, cost)

	cost, err = tsp.TourCost(m, []int{0, 1, 4, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, optimalCost5, cost)

	_, err = tsp.TourCost(m, []int{0, 7, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(nil, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
