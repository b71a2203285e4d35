// SPDX-License-Identifier: MIT
// Package tsp — cost utilities shared by both engines.
//
// The engines never touch matrix.Matrix in their hot loops: newDistTable
// (validate.go) copies the validated matrix into a distTable, a flat
// row-major snapshot that is read-only for the rest of the run and is
// therefore safe to share between concurrently walking ants.
//
// Design:
//   - Allocation-free lookups, O(1) per edge.
//   - Exported TourCost/PathCost validate their inputs and return sentinels.
//   - Returned costs are rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspmeta/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// distTable is an immutable n×n distance snapshot.
type distTable struct {
	n int
	w []float64 // w[u*n+v] == dist(u,v)
}

// at returns dist(u,v) without bounds checks; callers pass validated indices.
func (d *distTable) at(u, v int) float64 { return d.w[u*d.n+v] }

// tourCost sums consecutive edges tour[i]→tour[i+1] of a closed tour.
// The closing edge is already part of the sequence (tour[n]==tour[0]), so
// there is no extra wrap-around term.
//
// Complexity: O(len(tour)).
func (d *distTable) tourCost(tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += d.w[tour[i]*d.n+tour[i+1]]
	}

	return sum
}

// pathCost sums dist(e.From, e.To) over every edge.
//
// Complexity: O(len(path)).
func (d *distTable) pathCost(path Path) float64 {
	var sum float64
	for _, e := range path {
		sum += d.w[e.From*d.n+e.To]
	}

	return sum
}

// TourCost returns the total distance of a closed tour on dist.
//
// Contract:
//   - tour must represent a closed cycle: len(tour) >= 2, indices in [0..n-1].
//   - Every traversed edge must be finite and non-negative.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrInvalidDistance.
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		i   int
		w   float64
		err error
	)
	for i = 0; i+1 < len(tour); i++ {
		if w, err = edgeCost(dist, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// PathCost returns the total distance of an edge path on dist.
//
// Errors: same as TourCost.
// Complexity: O(len(path)).
func PathCost(dist matrix.Matrix, path Path) (float64, error) {
	if dist == nil || len(path) == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		w   float64
		err error
	)
	for _, e := range path {
		if w, err = edgeCost(dist, e.From, e.To); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single directed edge u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if u < 0 || u >= nr || v < 0 || v >= nr {
		return 0, ErrDimensionMismatch
	}

	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, ErrInvalidDistance
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
