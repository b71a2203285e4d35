// SPDX-License-Identifier: MIT
// Package tsp - validation utilities shared by both engines.
//
// This file contains small, deterministic helpers that:
//  1. Validate Options combinations (see options.go for the per-engine rules).
//  2. Validate distance matrices (shape, size, diagonal, finiteness, symmetry)
//     while copying them into an immutable distTable snapshot.
//  3. Validate the origin city.
//
// Design principles:
//   - Side-effect free; no logging, no panics on user input.
//   - Sentinel errors from types.go, wrapped with the offending index.
//   - O(n²) worst-case where n is the matrix order.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tspmeta/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// minCities is the smallest instance either engine accepts.
const minCities = 2

// validateAll verifies Options + distance matrix + start vertex and returns
// the validated distance snapshot.
//
// Contract:
//   - dist must be non-nil, square, n ≥ 2.
//   - Symmetry is enforced for AntColony and whenever opts.Symmetric is set.
//
// Complexity: O(n²) time and space.
func validateAll(dist matrix.Matrix, opts Options) (*distTable, error) {
	if err := validateOptionsStandalone(opts); err != nil {
		return nil, err
	}

	dt, err := newDistTable(dist, mustEnforceSymmetry(opts))
	if err != nil {
		return nil, err
	}

	if err = validateStartVertex(dt.n, opts.StartVertex); err != nil {
		return nil, err
	}

	return dt, nil
}

// mustEnforceSymmetry tells whether the chosen algorithm requires symmetry.
// The colony reinforces (i,j) and (j,i) together, which only makes sense on
// symmetric instances; the GA works on asymmetric ones too.
func mustEnforceSymmetry(opts Options) bool {
	if opts.Algo == AntColony {
		return true
	}

	return opts.Symmetric
}

// validateStartVertex verifies that start ∈ [0..n-1].
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// newDistTable performs full matrix validation and copies dist into a flat
// row-major buffer:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol),
//   - off-diagonal finite and non-negative,
//   - if symmetric: |a_ij − a_ji| ≤ symTol.
//
// Complexity: O(n²).
func newDistTable(dist matrix.Matrix, symmetric bool) (*distTable, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, ErrDimensionMismatch
		}
		return nil, fmt.Errorf("%v: %w", err, ErrNonSquare)
	}
	var n = dist.Rows()
	if n < minCities {
		return nil, fmt.Errorf("n=%d < %d: %w", n, minCities, ErrInvalidInstanceSize)
	}

	var (
		w    = make([]float64, n*n)
		i, j int
		aij  float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if aij, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, ErrDimensionMismatch)
			}
			if i == j {
				if math.IsNaN(aij) || math.Abs(aij) > symTol {
					return nil, fmt.Errorf("dist[%d][%d]=%g: %w", i, j, aij, ErrNonZeroDiagonal)
				}
				continue // stored as exact zero
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) || aij < 0 {
				return nil, fmt.Errorf("dist[%d][%d]=%g: %w", i, j, aij, ErrInvalidDistance)
			}
			w[i*n+j] = aij
		}
	}

	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(w[i*n+j]-w[j*n+i]) > symTol {
					return nil, fmt.Errorf("dist[%d][%d]=%g, dist[%d][%d]=%g: %w",
						i, j, w[i*n+j], j, i, w[j*n+i], ErrAsymmetry)
				}
			}
		}
	}

	return &distTable{n: n, w: w}, nil
}
