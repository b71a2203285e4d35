// SPDX-License-Identifier: MIT
// Package tsp - genetic algorithm engine.
//
// Generational loop (opts.Genetic.Generations rounds):
//  1. Evaluate the population; report best/mean/stddev distance.
//  2. Elitism: copy the ElitismSize fittest individuals unchanged.
//  3. Until PopSize is reached: two tournament winners → order crossover →
//     swap mutation → append.
//  4. Replace the population wholesale.
//
// The result is the fittest individual of the final population.
//
// Determinism: all randomness comes from rngFromSeed(opts.Seed).
// Complexity: O(G · P · n) time, O(P · n) space for G generations of P tours.
package tsp

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/tspmeta/matrix"
)

// TSPGenetic runs the genetic algorithm on dist using opts.Genetic and returns
// the best tour (origin opts.StartVertex at both ends) with its distance.
// opts.Algo is ignored.
//
// Errors: validation sentinels from validate.go and options.go.
func TSPGenetic(dist matrix.Matrix, opts Options) (TSResult, error) {
	opts.Algo = Genetic
	dt, err := validateAll(dist, opts)
	if err != nil {
		return TSResult{}, err
	}

	return runGenetic(dt, opts)
}

// runGenetic is the engine body over a validated snapshot.
func runGenetic(dt *distTable, opts Options) (TSResult, error) {
	var (
		g      = opts.Genetic
		rng    = rngFromSeed(opts.Seed)
		origin = opts.StartVertex
		pop    = make([]individual, g.PopSize)
		next   = make([]individual, 0, g.PopSize)
		i, gen int
	)
	for i = range pop {
		pop[i] = newIndividual(dt, newChromosome(dt.n, origin, rng))
	}

	for gen = 0; gen < g.Generations; gen++ {
		if opts.OnGeneration != nil {
			report, err := generationReport(gen, pop)
			if err != nil {
				return TSResult{}, err
			}
			opts.OnGeneration(report)
		}

		next = next[:0]
		next = appendElite(next, pop, g.ElitismSize)
		for len(next) < g.PopSize {
			p1 := tournamentSelect(pop, g.TournamentSize, rng)
			p2 := tournamentSelect(pop, g.TournamentSize, rng)
			child := orderCrossover(p1.tour, p2.tour, origin, rng)
			swapMutate(child, g.MutationRate, rng)
			next = append(next, newIndividual(dt, child))
		}
		pop, next = next, pop
	}

	best := fittest(pop)

	return TSResult{Tour: CopyTour(best.tour), Cost: round1e9(best.cost)}, nil
}

func newIndividual(dt *distTable, tour []int) individual {
	return individual{tour: tour, cost: dt.tourCost(tour)}
}

// fittest returns the first individual with maximal fitness.
func fittest(pop []individual) individual {
	var (
		best = pop[0]
		i    int
	)
	for i = 1; i < len(pop); i++ {
		if pop[i].cost < best.cost {
			best = pop[i]
		}
	}

	return best
}

// appendElite appends copies of the k fittest individuals in descending
// fitness order; equal fitness keeps population order.
//
// Complexity: O(P log P).
func appendElite(dst, pop []individual, k int) []individual {
	if k <= 0 {
		return dst
	}
	order := make([]int, len(pop))
	var i int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pop[order[a]].cost < pop[order[b]].cost
	})
	for i = 0; i < k; i++ {
		src := pop[order[i]]
		dst = append(dst, individual{tour: CopyTour(src.tour), cost: src.cost})
	}

	return dst
}

// generationReport summarizes the current population.
func generationReport(gen int, pop []individual) (GenerationReport, error) {
	costs := make([]float64, len(pop))
	var i int
	for i = range pop {
		costs[i] = pop[i].cost
	}
	mean, err := stats.Mean(costs)
	if err != nil {
		return GenerationReport{}, fmt.Errorf("generation %d mean: %w", gen, err)
	}
	sd, err := stats.StandardDeviationPopulation(costs)
	if err != nil {
		return GenerationReport{}, fmt.Errorf("generation %d stddev: %w", gen, err)
	}
	best := fittest(pop)

	return GenerationReport{
		Generation: gen,
		BestCost:   round1e9(best.cost),
		BestTour:   CopyTour(best.tour),
		MeanCost:   mean,
		StdDevCost: sd,
	}, nil
}
