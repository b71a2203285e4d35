// SPDX-License-Identifier: MIT
// Package tsp - a single ant's walk.
//
// From the current city the ant picks the next unvisited city with
// probability proportional to its desirability (see choiceTable). When
// every candidate has zero desirability the choice is uniform. After all
// cities are visited the closing edge back to the start is appended, so a
// walk always yields exactly n edges.
package tsp

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// TraverseGraph sends one ant from start over g with the given exponents.
// It reads the current pheromone state and never mutates g.
//
// Errors: ErrStartOutOfRange, ErrInvalidOption (negative or non-finite exponent).
// Complexity: O(n²).
func TraverseGraph(g *ColonyGraph, start int, alpha, beta float64, rng *rand.Rand) (Path, error) {
	if g == nil || rng == nil {
		return nil, ErrDimensionMismatch
	}
	if err := validateStartVertex(g.dist.n, start); err != nil {
		return nil, err
	}
	if alpha < 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, optionErrorf("Alpha", alpha)
	}
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, optionErrorf("Beta", beta)
	}

	return walk(g.choiceTable(alpha, beta), g.dist.n, start, rng), nil
}

// walk builds one closed path over a desirability table.
//
// Complexity: O(n²) time, O(n) space.
func walk(tbl []float64, n, start int, rng *rand.Rand) Path {
	var (
		path    = make(Path, 0, n)
		visited = make([]bool, n)
		cands   = make([]int, 0, n)
		weights = make([]float64, 0, n)
		cum     = make([]float64, n)
		cur     = start
		next    int
		v       int
	)
	visited[start] = true

	for len(path) < n-1 {
		cands = cands[:0]
		weights = weights[:0]
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			cands = append(cands, v)
			weights = append(weights, tbl[cur*n+v])
		}

		next = cands[pickIndex(weights, cum[:len(weights)], rng)]
		path = append(path, Edge{From: cur, To: next})
		visited[next] = true
		cur = next
	}

	return append(path, Edge{From: cur, To: start})
}

// pickIndex spins a roulette wheel over weights (non-negative). cum is
// scratch space of the same length. A zero or non-finite total falls back
// to a uniform choice.
//
// Complexity: O(len(weights)).
func pickIndex(weights, cum []float64, rng *rand.Rand) int {
	if len(weights) == 1 {
		// Forced move; no draw so the stream matches the number of real choices.
		return 0
	}
	floats.CumSum(cum, weights)
	total := cum[len(cum)-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	i := sort.Search(len(cum), func(k int) bool { return cum[k] > r })
	if i == len(cum) {
		i = len(cum) - 1
	}

	return i
}
