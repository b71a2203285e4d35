// SPDX-License-Identifier: MIT
// Package: matrix
//
// random.go — seeded generator of symmetric distance instances.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidDimensions).
//   • 0 ≤ min ≤ max, both finite (else ErrInvalidWeight).
//   • Diagonal is exactly 0.
//   • Each unordered pair {i,j}, i<j, is sampled once from [min, max] and
//     mirrored to (j,i).
//
// Determinism:
//   • Pairs are visited in lexicographic (i,j) order, so the same *rand.Rand
//     state always yields the same matrix.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	methodRandomSymmetric = "NewRandomSymmetric"

	// defaultRandomSeed keeps a nil rng deterministic instead of time-seeded.
	defaultRandomSeed int64 = 1
)

// NewRandomSymmetric returns an n×n symmetric Dense with zero diagonal and
// off-diagonal entries drawn uniformly from [min, max].
// A nil rng falls back to a fixed-seed stream; otherwise the caller owns seeding.
//
// Complexity: O(n²) time and memory.
func NewRandomSymmetric(n int, min, max float64, rng *rand.Rand) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomSymmetric, n, ErrInvalidDimensions)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min < 0 || max < min {
		return nil, fmt.Errorf("%s: require 0 ≤ min ≤ max, got min=%g, max=%g: %w", methodRandomSymmetric, min, max, ErrInvalidWeight)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRandomSeed))
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
		span = max - min
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = min
			if span > 0 {
				// Float64 is in [0,1); the closed upper bound is reachable only
				// through the degenerate min==max case.
				w = min + rng.Float64()*span
			}
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d, nil
}
