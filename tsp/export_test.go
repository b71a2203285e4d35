// SPDX-License-Identifier: MIT
// Test-only bridges to unexported operators. Compiled only with `go test`.

package tsp

import "math/rand"

// NewChromosome exposes newChromosome.
func NewChromosome(n, origin int, rng *rand.Rand) []int { return newChromosome(n, origin, rng) }

// OrderCrossover exposes orderCrossover.
func OrderCrossover(p1, p2 []int, origin int, rng *rand.Rand) []int {
	return orderCrossover(p1, p2, origin, rng)
}

// SwapMutate exposes swapMutate.
func SwapMutate(tour []int, rate float64, rng *rand.Rand) { swapMutate(tour, rate, rng) }

// TournamentSelect runs tournamentSelect over tours scored by costs and
// returns the winner's index in tours.
func TournamentSelect(tours [][]int, costs []float64, k int, rng *rand.Rand) []int {
	pop := make([]individual, len(tours))
	for i := range tours {
		pop[i] = individual{tour: tours[i], cost: costs[i]}
	}

	return tournamentSelect(pop, k, rng).tour
}

// SampleDistinct exposes sampleDistinct.
func SampleDistinct(rng *rand.Rand, lo, hi, k int) []int { return sampleDistinct(rng, lo, hi, k) }

// ParallelMap exposes parallelMap for ints.
func ParallelMap(workers int, in []int, fn func(int) int) []int { return parallelMap(workers, in, fn) }
