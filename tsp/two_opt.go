// SPDX-License-Identifier: MIT
// Package tsp - 2-opt polish for engine results on symmetric instances.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// reversing segment [i..k] replaces edges (a,b),(c,d) by (a,c),(b,d) with
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// A move is accepted when Δ < −opts.Eps; the scan restarts after each move.
//
// Contracts:
//   - dist is symmetric (the reversal changes edge directions).
//   - tour is a closed Hamiltonian cycle with tour[0]==tour[n]==opts.StartVertex.
//
// Complexity: O(iter·n²) time, O(n) extra space.
package tsp

import "github.com/katalvlaran/tspmeta/matrix"

// TwoOpt improves tour on dist and returns the new tour with its cost.
// The input tour is not modified.
func TwoOpt(dist matrix.Matrix, tour []int, opts Options) ([]int, float64, error) {
	if opts.Eps < 0 || opts.TwoOptMaxIters < 0 {
		return nil, 0, ErrInvalidOption
	}
	dt, err := newDistTable(dist, true)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidateTour(tour, dt.n, opts.StartVertex); err != nil {
		return nil, 0, err
	}
	out, cost := twoOpt(dt, tour, opts.Eps, opts.TwoOptMaxIters)

	return out, round1e9(cost), nil
}

// twoOpt is the engine body over a validated snapshot.
func twoOpt(dt *distTable, tour []int, eps float64, maxIters int) ([]int, float64) {
	var (
		n        = dt.n
		cur      = CopyTour(tour)
		cost     = dt.tourCost(cur)
		accepted int
	)
	if n < 4 {
		return cur, cost // no pair of non-adjacent interior edges
	}

	for {
		improved := false

		var (
			a, b, c, d int
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = (dt.at(a, c) + dt.at(b, d)) - (dt.at(a, b) + dt.at(c, d))
				if delta >= -eps {
					continue
				}
				_ = reverseArcInPlace(cur, i, k) // 1 ≤ i < k ≤ n−1 by construction
				cost += delta
				accepted++
				improved = true
				break
			}
		}

		if !improved || (maxIters > 0 && accepted >= maxIters) {
			break
		}
	}

	return cur, cost
}
