// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil/symmetry checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols > 0).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// A negative tol is treated as its absolute value.
//
// Errors: ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a
// non-finite tol or entry, ErrAsymmetry on violation.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return validatorErrorf("ValidateSymmetric", ErrNaNInf)
			}
			// Equal infinities count as symmetric; the distance layer rejects them separately.
			if aij == aji {
				continue
			}
			if math.Abs(aij-aji) > tol {
				return fmt.Errorf("ValidateSymmetric(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
