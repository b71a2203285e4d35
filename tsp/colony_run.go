// SPDX-License-Identifier: MIT
// Package tsp - ant colony optimization engine.
//
// Iteration loop (opts.Colony.Iterations rounds):
//  1. Draw a random start city and a private RNG stream for every ant.
//  2. Snapshot desirabilities from the current pheromones (choiceTable).
//  3. Walk all ants through parallelMap; none sees another's path.
//  4. After the barrier: UpdatePheromones with the whole batch.
//  5. Update the global best (strictly lower cost wins; earlier ant on ties).
//
// Determinism: streams are derived on the coordinating goroutine in ant
// order, so a fixed Seed gives the same result for any Workers value.
// Complexity: O(I · (n² + A · n²)) time, O(A · n + n²) space.
package tsp

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/tspmeta/matrix"
)

// antTask is one ant's private input.
type antTask struct {
	start int
	rng   *rand.Rand
}

// TSPAntColony runs the ant colony optimizer on a fresh ColonyGraph built
// from dist. opts.Algo is ignored.
func TSPAntColony(dist matrix.Matrix, opts Options) (ColonyResult, error) {
	return TSPAntColonyContext(context.Background(), dist, opts)
}

// TSPAntColonyContext is TSPAntColony with cancellation checked between
// iterations; a started iteration always completes. On cancellation the
// context error is returned together with the best result found so far.
func TSPAntColonyContext(ctx context.Context, dist matrix.Matrix, opts Options) (ColonyResult, error) {
	opts.Algo = AntColony
	dt, err := validateAll(dist, opts)
	if err != nil {
		return ColonyResult{}, err
	}

	return newColonyGraph(dt).Optimize(ctx, opts)
}

// Optimize runs the colony on g, mutating its pheromone matrix in place.
// Only opts.Seed, opts.StartVertex, opts.Colony and opts.OnIteration are read.
func (g *ColonyGraph) Optimize(ctx context.Context, opts Options) (ColonyResult, error) {
	if err := validateColonyOptions(opts.Colony); err != nil {
		return ColonyResult{}, err
	}
	if err := validateStartVertex(g.dist.n, opts.StartVertex); err != nil {
		return ColonyResult{}, err
	}

	var (
		c        = opts.Colony
		n        = g.dist.n
		rng      = rngFromSeed(opts.Seed)
		tasks    = make([]antTask, c.Ants)
		costs    = make([]float64, c.Ants)
		bestPath Path
		bestCost = math.Inf(1)
		it, a    int
	)

	for it = 0; it < c.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			res, _ := colonyResult(bestPath, bestCost, opts.StartVertex)
			return res, fmt.Errorf("iteration %d: %w", it, err)
		}

		for a = range tasks {
			tasks[a] = antTask{
				start: rng.Intn(n),
				rng:   deriveRNG(rng, uint64(it)*uint64(c.Ants)+uint64(a)),
			}
		}

		tbl := g.choiceTable(c.Alpha, c.Beta)
		paths := parallelMap(c.Workers, tasks, func(t antTask) Path {
			return walk(tbl, n, t.start, t.rng)
		})

		if err := g.UpdatePheromones(paths, c.Decay, c.Q); err != nil {
			return ColonyResult{}, err
		}

		iterBest := math.Inf(1)
		for a = range paths {
			costs[a] = g.dist.pathCost(paths[a])
			if costs[a] < iterBest {
				iterBest = costs[a]
			}
			if costs[a] < bestCost {
				bestCost = costs[a]
				bestPath = paths[a]
			}
		}

		if opts.OnIteration != nil {
			report, err := iterationReport(it, bestCost, iterBest, costs)
			if err != nil {
				return ColonyResult{}, err
			}
			opts.OnIteration(report)
		}
	}

	return colonyResult(bestPath, bestCost, opts.StartVertex)
}

// colonyResult packages the best path with its tour form.
func colonyResult(best Path, cost float64, start int) (ColonyResult, error) {
	if best == nil {
		return ColonyResult{}, nil
	}
	tour, err := PathToTour(best)
	if err != nil {
		return ColonyResult{}, err
	}
	if tour, err = RotateTourToStart(tour, start); err != nil {
		return ColonyResult{}, err
	}

	return ColonyResult{Path: best, Tour: tour, Cost: round1e9(cost)}, nil
}

func iterationReport(it int, best, iterBest float64, costs []float64) (IterationReport, error) {
	mean, err := stats.Mean(costs)
	if err != nil {
		return IterationReport{}, fmt.Errorf("iteration %d mean: %w", it, err)
	}
	median, err := stats.Median(costs)
	if err != nil {
		return IterationReport{}, fmt.Errorf("iteration %d median: %w", it, err)
	}

	return IterationReport{
		Iteration:     it,
		BestCost:      round1e9(best),
		IterationBest: round1e9(iterBest),
		MeanCost:      mean,
		MedianCost:    median,
	}, nil
}
