// SPDX-License-Identifier: MIT
// Package tsp - unified dispatcher for the metaheuristic engines.
//
// SolveWithMatrix accepts a distance matrix and routes to the requested
// engine (Genetic / AntColony), applying strict validation and an optional
// 2-opt post-pass. It always returns a node tour rooted at opts.StartVertex.
//
// Design principles:
//   - Deterministic: opts.Seed feeds every random draw.
//   - Strict sentinels from types.go.
//   - Stable cost: returned costs are rounded to 1e−9.
package tsp

import (
	"context"

	"github.com/katalvlaran/tspmeta/matrix"
)

// SolveWithMatrix validates inputs and runs opts.Algo.
//
// Contracts:
//   - dist must be square with n ≥ 2, zero diagonal, finite non-negative entries.
//   - Symmetry is enforced for AntColony and when opts.Symmetric is set.
//   - EnableLocalSearch requires a symmetric instance (validated as such).
//
// Errors: ErrNonSquare, ErrInvalidInstanceSize, ErrNonZeroDiagonal,
// ErrInvalidDistance, ErrAsymmetry, ErrStartOutOfRange, ErrInvalidOption,
// ErrUnsupportedAlgorithm.
func SolveWithMatrix(dist matrix.Matrix, opts Options) (TSResult, error) {
	return SolveWithMatrixContext(context.Background(), dist, opts)
}

// SolveWithMatrixContext is SolveWithMatrix with cancellation for the
// colony engine (checked between iterations). A cancelled colony run
// returns the best tour found so far together with the context error;
// the 2-opt polish is skipped in that case.
func SolveWithMatrixContext(ctx context.Context, dist matrix.Matrix, opts Options) (TSResult, error) {
	if opts.EnableLocalSearch {
		opts.Symmetric = true
	}
	dt, err := validateAll(dist, opts)
	if err != nil {
		return TSResult{}, err
	}

	var res TSResult
	switch opts.Algo {
	case Genetic:
		if res, err = runGenetic(dt, opts); err != nil {
			return TSResult{}, err
		}

	case AntColony:
		cr, cerr := newColonyGraph(dt).Optimize(ctx, opts)
		if cerr != nil {
			// On cancellation the best tour found so far travels with the error.
			if cr.Tour != nil {
				return TSResult{Tour: cr.Tour, Cost: cr.Cost}, cerr
			}
			return TSResult{}, cerr
		}
		res = TSResult{Tour: cr.Tour, Cost: cr.Cost}

	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}

	if opts.EnableLocalSearch {
		tour, cost := twoOpt(dt, res.Tour, opts.Eps, opts.TwoOptMaxIters)
		if err = CanonicalizeOrientationInPlace(tour); err != nil {
			return TSResult{}, err
		}
		res = TSResult{Tour: tour, Cost: round1e9(cost)}
	}

	if verr := ValidateTour(res.Tour, dt.n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}

	return res, nil
}
