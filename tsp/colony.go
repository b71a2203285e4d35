// SPDX-License-Identifier: MIT
// Package tsp - ant colony graph: distances plus pheromone intensities.
//
// ColonyGraph owns two N×N tables for the duration of a run:
//   - the validated distance snapshot (immutable, symmetric);
//   - the pheromone matrix, a gonum *mat.SymDense, so (i,j) and (j,i) share
//     one storage cell and symmetry holds by construction.
//
// Pheromone lifecycle: initialized to 1.0 everywhere, multiplied by decay
// and reinforced by Q/cost after every iteration, never reset mid-run.
// The matrix is written only by UpdatePheromones, which the engine calls
// on the coordinating goroutine after all ants of an iteration returned.
package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspmeta/matrix"
)

// initialPheromone is the uniform starting intensity.
const initialPheromone = 1.0

// ColonyGraph holds the distance and pheromone matrices of an ant colony.
// It is not safe for concurrent mutation.
type ColonyGraph struct {
	dist      *distTable
	pheromone *mat.SymDense
}

// NewColonyGraph validates dist (square, n ≥ 2, zero diagonal, finite
// non-negative and symmetric) and returns a graph with uniform pheromone 1.0.
//
// Complexity: O(n²).
func NewColonyGraph(dist matrix.Matrix) (*ColonyGraph, error) {
	dt, err := newDistTable(dist, true)
	if err != nil {
		return nil, err
	}

	return newColonyGraph(dt), nil
}

func newColonyGraph(dt *distTable) *ColonyGraph {
	var (
		n    = dt.n
		data = make([]float64, n*n)
		i    int
	)
	for i = range data {
		data[i] = initialPheromone
	}

	return &ColonyGraph{dist: dt, pheromone: mat.NewSymDense(n, data)}
}

// Nodes returns the number of cities.
func (g *ColonyGraph) Nodes() int { return g.dist.n }

// Distance returns dist(a,b). Panics on out-of-range indices like slice access.
func (g *ColonyGraph) Distance(a, b int) float64 { return g.dist.at(a, b) }

// Intensity returns the pheromone on edge {a,b}.
func (g *ColonyGraph) Intensity(a, b int) float64 { return g.pheromone.At(a, b) }

// Pheromone returns an independent copy of the pheromone matrix.
func (g *ColonyGraph) Pheromone() *mat.SymDense {
	cp := mat.NewSymDense(g.dist.n, nil)
	cp.CopySym(g.pheromone)

	return cp
}

// PathCost returns the sum of distances over path (unrounded).
func (g *ColonyGraph) PathCost(path Path) float64 { return g.dist.pathCost(path) }

// UpdatePheromones applies one iteration's update:
//  1. every intensity is multiplied by decay;
//  2. for each path with cost c > 0, every traversed edge (i,j) gains q/c
//     on both (i,j) and (j,i) (one shared cell in the symmetric store).
//
// Paths are checked before anything is mutated; an edge outside [0,n) or a
// self-loop yields ErrDimensionMismatch and leaves the matrix untouched.
// Zero-cost paths (all-zero distances) deposit nothing since q/0 is not finite.
// An empty batch performs decay only.
//
// Complexity: O(n² + Σ|path|).
func (g *ColonyGraph) UpdatePheromones(paths []Path, decay, q float64) error {
	var n = g.dist.n
	for pi, p := range paths {
		for _, e := range p {
			if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
				return fmt.Errorf("path %d edge (%d,%d): %w", pi, e.From, e.To, ErrDimensionMismatch)
			}
		}
	}

	g.pheromone.ScaleSym(decay, g.pheromone)

	var (
		cost    float64
		deposit float64
	)
	for _, p := range paths {
		cost = g.dist.pathCost(p)
		if !(cost > 0) {
			continue
		}
		deposit = q / cost
		if math.IsInf(deposit, 0) || math.IsNaN(deposit) {
			continue
		}
		for _, e := range p {
			g.pheromone.SetSym(e.From, e.To, g.pheromone.At(e.From, e.To)+deposit)
		}
	}

	return nil
}

// choiceTable precomputes desirability intensity(i,j)^alpha · (1/dist(i,j))^beta
// for every ordered pair. Non-finite values (zero distance, 0·Inf) are
// neutralized to 0; the diagonal is 0. The table is a read-only snapshot
// shared by all ants of one iteration.
//
// Complexity: O(n²).
func (g *ColonyGraph) choiceTable(alpha, beta float64) []float64 {
	var (
		n    = g.dist.n
		tbl  = make([]float64, n*n)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = desirability(g.pheromone.At(i, j), g.dist.at(i, j), alpha, beta)
			tbl[i*n+j] = v
		}
	}

	return tbl
}

// desirability returns tau^alpha · (1/d)^beta, or 0 when the result is
// not a finite number.
func desirability(tau, d, alpha, beta float64) float64 {
	v := math.Pow(tau, alpha) * math.Pow(1/d, beta)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
