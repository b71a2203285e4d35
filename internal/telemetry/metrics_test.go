package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/matrix"
	"github.com/katalvlaran/tspmeta/tsp"
)

func fiveCities(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 3, 5, 7},
		{2, 0, 4, 6, 3},
		{3, 4, 0, 7, 5},
		{5, 6, 7, 0, 4},
		{7, 3, 5, 4, 0},
	})
	require.NoError(t, err)

	return m
}

func TestCollector_Genetic(t *testing.T) {
	c := NewCollector("run-1")
	opts := tsp.DefaultOptions()
	opts.Genetic.Generations = 12
	c.Attach(&opts)

	res, err := tsp.SolveWithMatrix(fiveCities(t), opts)
	require.NoError(t, err)
	c.Result(opts.Algo, res, 250*time.Millisecond)

	require.Equal(t, 12.0, testutil.ToFloat64(c.RoundsTotal.WithLabelValues("genetic")))
	require.GreaterOrEqual(t, testutil.ToFloat64(c.BestDistance.WithLabelValues("genetic")), res.Cost)
	require.Equal(t, res.Cost, testutil.ToFloat64(c.ResultDistance.WithLabelValues("genetic")))
	require.Equal(t, 0.25, testutil.ToFloat64(c.RunSeconds.WithLabelValues("genetic")))
}

func TestCollector_Colony(t *testing.T) {
	c := NewCollector("run-2")
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AntColony
	opts.Colony.Iterations = 7
	c.Attach(&opts)

	_, err := tsp.SolveWithMatrix(fiveCities(t), opts)
	require.NoError(t, err)
	require.Equal(t, 7.0, testutil.ToFloat64(c.RoundsTotal.WithLabelValues("antcolony")))
	require.Greater(t, testutil.ToFloat64(c.SpreadDistance.WithLabelValues("antcolony", "median")), 0.0)
}

func TestCollector_WriteText(t *testing.T) {
	c := NewCollector("abc")
	c.OnIteration(tsp.IterationReport{Iteration: 0, BestCost: 19, MeanCost: 21, MedianCost: 20})

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, "# TYPE tspmeta_rounds_total counter")
	require.Contains(t, out, `tspmeta_best_distance{algo="antcolony",run_id="abc"} 19`)
	require.Contains(t, out, `tspmeta_round_distance{algo="antcolony",run_id="abc",stat="median"} 20`)
}
