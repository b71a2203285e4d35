// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; engines may wrap them
// with index or parameter context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrDimensionMismatch signals malformed shapes: nil inputs, tours of the
	// wrong length, out-of-range or repeated city indices.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not N×N.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some dist[i][i] differs from 0.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal is not zero")

	// ErrAsymmetry is returned when a symmetric instance is required
	// (ant colony, or Options.Symmetric) but dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrInvalidDistance is returned for negative, NaN or infinite
	// off-diagonal distances.
	ErrInvalidDistance = errors.New("tsp: invalid distance")

	// ErrInvalidInstanceSize is returned when the instance has fewer than
	// two cities.
	ErrInvalidInstanceSize = errors.New("tsp: invalid instance size")

	// ErrStartOutOfRange is returned when the origin city is not in [0, N).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidOption is returned for out-of-range engine parameters.
	ErrInvalidOption = errors.New("tsp: invalid option")

	// ErrUnsupportedAlgorithm is returned for an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// optionErrorf tags ErrInvalidOption with the offending field and value.
func optionErrorf(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidOption)
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of city indices, starting and ending at the origin.
	// For n cities, len(Tour) == n+1 and Tour[0]==Tour[n].
	Tour []int

	// Cost is the total distance of the closed tour.
	Cost float64
}

// Edge is a directed hop between two cities.
type Edge struct {
	From int
	To   int
}

// Path is the edge-indexed form of a closed tour: N directed edges, each
// edge starting where the previous one ended, the last one returning to
// Path[0].From.
type Path []Edge

// ColonyResult holds the outcome of an ant colony run.
type ColonyResult struct {
	// Path is the best closed path found, starting at the ant's own start city.
	Path Path

	// Tour is Path as a node sequence rotated to Options.StartVertex.
	Tour []int

	// Cost is the sum of distances over Path.
	Cost float64
}

// GenerationReport is passed to Options.OnGeneration once per generation,
// after the population has been evaluated and before it is replaced.
type GenerationReport struct {
	Generation int     // zero-based generation index
	BestCost   float64 // distance of the fittest individual
	BestTour   []int   // copy of the fittest individual
	MeanCost   float64 // mean distance over the population
	StdDevCost float64 // population standard deviation of distance
}

// IterationReport is passed to Options.OnIteration once per colony
// iteration, after the pheromone update.
type IterationReport struct {
	Iteration     int     // zero-based iteration index
	BestCost      float64 // best cost seen across all iterations so far
	IterationBest float64 // best cost among this iteration's ants
	MeanCost      float64 // mean ant cost in this iteration
	MedianCost    float64 // median ant cost in this iteration
}
