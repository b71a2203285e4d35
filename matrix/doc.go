// SPDX-License-Identifier: MIT

// Package matrix is the distance model shared by the TSP engines.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface over an N×N grid of float64
//     edge costs (At/Set/Rows/Cols/Clone).
//   - Dense, a row-major implementation backed by a single flat slice.
//   - NewDenseFromRows for literal instances and ToRows/String for printing.
//   - NewRandomSymmetric, a seeded generator of symmetric instances with a
//     zero diagonal (each unordered pair is sampled once and mirrored).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric) that
//     return the sentinels from errors.go.
//
// Indices are plain ints in [0, N); a city has no attributes beyond its
// index. No function in this package logs or panics on user input.
package matrix
