// SPDX-License-Identifier: MIT
// Package tsp — tour forms and their invariants.
//
// A tour is the node form of a cycle: n+1 cities with the origin repeated
// at the end. A Path is the edge form the colony produces: n directed
// edges, each starting where the previous one ended. Validation happens on
// the edge form; the node form is converted first.
//
// Every helper is O(n), never logs and reports malformed input with
// ErrDimensionMismatch or ErrStartOutOfRange.
package tsp

import (
	"slices"
	"strconv"
	"strings"
)

// ValidateTour reports whether tour is a Hamiltonian cycle over [0, n)
// that leaves from and returns to start.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start {
		return ErrDimensionMismatch
	}
	if n == 1 {
		// A single city has no edges to walk.
		if tour[1] != start {
			return ErrDimensionMismatch
		}
		return nil
	}

	path, err := TourToPath(tour)
	if err != nil {
		return err
	}

	return ValidatePath(path, n)
}

// ValidatePath checks that path is a closed chain of n edges in which
// every city of [0, n) is left exactly once.
func ValidatePath(path Path, n int) error {
	if n <= 0 || len(path) != n {
		return ErrDimensionMismatch
	}

	left := make([]bool, n)
	prev := path[n-1].To
	for _, e := range path {
		if e.From != prev || e.From == e.To {
			return ErrDimensionMismatch
		}
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || left[e.From] {
			return ErrDimensionMismatch
		}
		left[e.From] = true
		prev = e.To
	}

	return nil
}

// TourToPath turns a closed tour into its directed edges.
func TourToPath(tour []int) (Path, error) {
	last := len(tour) - 1
	if last < 2 || tour[0] != tour[last] {
		return nil, ErrDimensionMismatch
	}

	path := make(Path, 0, last)
	for k, from := range tour[:last] {
		path = append(path, Edge{From: from, To: tour[k+1]})
	}

	return path, nil
}

// PathToTour turns a chained edge path back into a closed tour.
func PathToTour(path Path) ([]int, error) {
	if len(path) == 0 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, 0, len(path)+1)
	at := path[0].From
	for _, e := range path {
		if e.From != at {
			return nil, ErrDimensionMismatch
		}
		tour = append(tour, at)
		at = e.To
	}
	if at != tour[0] {
		return nil, ErrDimensionMismatch
	}

	return append(tour, at), nil
}

// RotateTourToStart returns a copy of the closed tour that leaves from
// start. The input is not modified.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	n := len(tour) - 1
	if n < 1 || tour[0] != tour[n] {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := slices.Index(tour[:n], start)
	if pivot < 0 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, 0, n+1)
	out = append(out, tour[pivot:n]...)
	out = append(out, tour[:pivot]...)

	return append(out, start), nil
}

// CanonicalizeOrientationInPlace picks one of the two directions of a
// symmetric tour: the neighbour after the origin is the smaller of its two
// neighbours.
func CanonicalizeOrientationInPlace(tour []int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		slices.Reverse(tour[1:n])
	}

	return nil
}

// reverseArcInPlace is the 2-opt move: it reverses tour[i..k] with
// 1 ≤ i < k ≤ n-1, so both ends of the closed tour stay fixed.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] || i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	slices.Reverse(tour[i : k+1])

	return nil
}

// CopyTour returns an independent copy; nil stays nil.
func CopyTour(tour []int) []int { return slices.Clone(tour) }

// DebugString renders a tour as "[0 3 1 2 | 0]", the bar marking closure.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}

	parts := make([]string, len(tour))
	for k, v := range tour {
		parts[k] = strconv.Itoa(v)
	}
	if len(parts) == 1 {
		return "[" + parts[0] + "]"
	}
	last := len(parts) - 1

	return "[" + strings.Join(parts[:last], " ") + " | " + parts[last] + "]"
}
