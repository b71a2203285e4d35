package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
)

func TestSolveWithMatrix_Dispatch(t *testing.T) {
	for _, algo := range []tsp.Algo{tsp.Genetic, tsp.AntColony} {
		t.Run(algo.String(), func(t *testing.T) {
			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.StartVertex = 3
			res, err := tsp.SolveWithMatrix(example5(t), opts)
			require.NoError(t, err)
			requireTour(t, res.Tour, 5, 3)
			require.Equal(t, optimalCost5, res.Cost)
		})
	}
}

func TestSolveWithMatrix_LocalSearchPolishes(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Genetic.Generations = 0 // best of the random initial population
	opts.EnableLocalSearch = true

	res, err := tsp.SolveWithMatrix(circle(t, 10), opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, res.Tour)
	require.InDelta(t, perimeter(10), res.Cost, 1e-8)
}

func TestSolveWithMatrix_LocalSearchNeedsSymmetry(t *testing.T) {
	asym := mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 9, 0}})
	opts := tsp.DefaultOptions()
	_, err := tsp.SolveWithMatrix(asym, opts)
	require.NoError(t, err)

	opts.EnableLocalSearch = true
	_, err = tsp.SolveWithMatrix(asym, opts)
	require.ErrorIs(t, err, tsp.ErrAsymmetry)
}

func TestSolveWithMatrix_Errors(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algo(99)
	_, err := tsp.SolveWithMatrix(example5(t), opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	opts = tsp.DefaultOptions()
	opts.StartVertex = -1
	_, err = tsp.SolveWithMatrix(example5(t), opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, err = tsp.SolveWithMatrix(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.SolveWithMatrix(mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	opts = tsp.DefaultOptions()
	opts.TwoOptMaxIters = -1
	_, err = tsp.SolveWithMatrix(example5(t), opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOption)
}

func TestSolveWithMatrixContext_CancelsColony(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AntColony
	res, err := tsp.SolveWithMatrixContext(ctx, example5(t), opts)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res.Tour, "no iteration ran")
}

func TestSolveWithMatrixContext_CancelMidRunKeepsBest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AntColony
	opts.StartVertex = 2
	opts.EnableLocalSearch = true
	opts.OnIteration = func(r tsp.IterationReport) {
		if r.Iteration == 1 {
			cancel()
		}
	}

	m := example5(t)
	res, err := tsp.SolveWithMatrixContext(ctx, m, opts)
	require.ErrorIs(t, err, context.Canceled)
	requireTour(t, res.Tour, 5, 2)

	path, err := tsp.TourToPath(res.Tour)
	require.NoError(t, err)
	cost, err := tsp.PathCost(m, path)
	require.NoError(t, err)
	require.Equal(t, cost, res.Cost)
}

func TestParseAlgo(t *testing.T) {
	for in, want := range map[string]tsp.Algo{
		"ga": tsp.Genetic, "Genetic": tsp.Genetic,
		"aco": tsp.AntColony, " AntColony ": tsp.AntColony, "ant-colony": tsp.AntColony,
	} {
		got, err := tsp.ParseAlgo(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := tsp.ParseAlgo("simulated-annealing")
	require.ErrorIs(t, err, tsp.ErrInvalidOption)

	require.Equal(t, "genetic", tsp.Genetic.String())
	require.Equal(t, "antcolony", tsp.AntColony.String())
	require.Equal(t, "unknown", tsp.Algo(7).String())
}
