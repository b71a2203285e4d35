// SPDX-License-Identifier: MIT
// Package tsp - genetic operators on fixed-origin tours.
//
// A chromosome is a closed tour of length n+1 whose first and last gene are
// the origin city; only the interior positions 1..n-1 ever change.
//
// Operators:
//   - newChromosome:     origin + random interior permutation + origin.
//   - fitness:           1/(1+cost), in (0,1], strictly decreasing in cost.
//   - tournamentSelect:  k distinct contestants, first maximum wins.
//   - orderCrossover:    OX with the origin pinned; bounds-safe fill.
//   - swapMutate:        one interior swap with probability rate.
package tsp

import "math/rand"

// minCrossoverCities is the smallest instance with two distinct interior
// cut points (positions 1..n-2).
const minCrossoverCities = 4

// individual caches a chromosome's cost; fitness is derived from it.
type individual struct {
	tour []int
	cost float64
}

// fitness maps a tour cost to (0,1]; cost 0 ⇒ 1.
func fitness(cost float64) float64 {
	return 1 / (1 + cost)
}

// Fitness is the exported form of the GA fitness transform.
func Fitness(cost float64) float64 { return fitness(cost) }

// newChromosome returns [origin, shuffled others..., origin].
//
// Complexity: O(n).
func newChromosome(n, origin int, rng *rand.Rand) []int {
	tour := make([]int, n+1)
	tour[0] = origin
	tour[n] = origin

	var (
		pos = 1
		v   int
	)
	for v = 0; v < n; v++ {
		if v == origin {
			continue
		}
		tour[pos] = v
		pos++
	}
	shuffleIntsInPlace(tour[1:n], rng)

	return tour
}

// tournamentSelect draws k distinct individuals without replacement and
// returns the fittest; ties keep the earliest draw.
//
// Complexity: O(len(pop)).
func tournamentSelect(pop []individual, k int, rng *rand.Rand) individual {
	var (
		picks = sampleDistinct(rng, 0, len(pop), k)
		best  = pop[picks[0]]
		i     int
	)
	for i = 1; i < len(picks); i++ {
		// Lower cost is strictly higher fitness.
		if pop[picks[i]].cost < best.cost {
			best = pop[picks[i]]
		}
	}

	return best
}

// orderCrossover builds one child from two parents:
//  1. Draw cut points start<end uniformly from interior positions 1..n-2.
//  2. Copy parent1[start..end] verbatim into the same child positions.
//  3. Fill the remaining positions 1..n-1 left to right with parent2's
//     interior cities in parent2 order, skipping cities already placed.
//  4. Close the tour with the origin.
//
// The fill never indexes past parent2: if parent2 runs out (only possible
// for malformed parents) the leftover holes get the unplaced cities in
// ascending order, so the child is a valid tour regardless of its parents.
// Parents must have length n+1. For n < 4 there is no interior cut and the
// child is a copy of parent1.
//
// Complexity: O(n).
func orderCrossover(parent1, parent2 []int, origin int, rng *rand.Rand) []int {
	var n = len(parent1) - 1
	if n < minCrossoverCities {
		return CopyTour(parent1)
	}

	start, end := distinctPair(rng, 1, n-1)

	var (
		child  = make([]int, n+1)
		placed = make([]bool, n)
		i, v   int
	)
	for i = range child {
		child[i] = -1
	}
	child[0], child[n] = origin, origin
	placed[origin] = true

	// Step 2: preserved segment. Invalid or duplicate genes leave a hole.
	for i = start; i <= end; i++ {
		v = parent1[i]
		if v < 0 || v >= n || placed[v] {
			continue
		}
		child[i] = v
		placed[v] = true
	}

	// Step 3: fill holes from parent2's interior in its own order.
	var (
		p2  = 1
		pos = 1
	)
	for pos < n {
		if child[pos] != -1 {
			pos++
			continue
		}
		if p2 >= len(parent2)-1 {
			break // parent2 exhausted
		}
		v = parent2[p2]
		p2++
		if v < 0 || v >= n || placed[v] {
			continue
		}
		child[pos] = v
		placed[v] = true
		pos++
	}

	// Exhaustion fallback: remaining holes get unplaced cities ascending.
	v = 0
	for ; pos < n; pos++ {
		if child[pos] != -1 {
			continue
		}
		for placed[v] {
			v++
		}
		child[pos] = v
		placed[v] = true
	}

	return child
}

// swapMutate swaps two distinct interior genes with probability rate.
// The coin is always flipped so the RNG stream does not depend on n.
// Length and both ends are never changed.
//
// Complexity: O(1).
func swapMutate(tour []int, rate float64, rng *rand.Rand) {
	if rng.Float64() >= rate {
		return
	}
	var n = len(tour) - 1
	if n-1 < 2 { // fewer than two interior positions
		return
	}
	i, j := distinctPair(rng, 1, n)
	tour[i], tour[j] = tour[j], tour[i]
}
