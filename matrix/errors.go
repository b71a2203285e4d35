// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors for distance-matrix construction and checks.
// Callers match them with errors.Is; wrapped context never replaces them.

package matrix

import "errors"

// Messages carry the "matrix: " prefix.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a city index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible or ragged dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidWeight indicates a bad weight range for the random generator
	// (negative bound, max < min, or non-finite bound).
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
