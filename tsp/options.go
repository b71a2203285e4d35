// SPDX-License-Identifier: MIT
// Package tsp - solver options and their standalone validation.
//
// Options is a flat struct shared by the dispatcher; engine-specific knobs
// live in the nested Genetic and Colony blocks. Start from DefaultOptions()
// and override fields; the zero Options is NOT a valid configuration.

package tsp

import (
	"math"
	"strings"
)

// Algo selects the metaheuristic run by SolveWithMatrix.
type Algo int

const (
	// Genetic evolves a population of fixed-origin tours.
	Genetic Algo = iota
	// AntColony builds tours with pheromone-weighted random walks.
	AntColony
)

// String returns the lowercase algorithm name.
func (a Algo) String() string {
	switch a {
	case Genetic:
		return "genetic"
	case AntColony:
		return "antcolony"
	default:
		return "unknown"
	}
}

// ParseAlgo maps "ga"/"genetic" and "aco"/"antcolony" (case-insensitive)
// to an Algo.
func ParseAlgo(s string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ga", "genetic":
		return Genetic, nil
	case "aco", "antcolony", "ant-colony":
		return AntColony, nil
	default:
		return 0, optionErrorf("algo", s)
	}
}

// Defaults mirror the reference runs.
const (
	DefaultPopSize        = 100
	DefaultGenerations    = 100
	DefaultMutationRate   = 0.01
	DefaultElitismSize    = 2
	DefaultTournamentSize = 3

	DefaultIterations = 100
	DefaultAnts       = 10
	DefaultAlpha      = 1.0
	DefaultBeta       = 3.0
	DefaultDecay      = 0.5
	DefaultQ          = 100.0

	// DefaultSeed is the GA driver's reproducibility seed.
	DefaultSeed int64 = 42

	// DefaultEps is the strict improvement threshold for local search.
	DefaultEps = 1e-12
)

// GeneticOptions configures the genetic algorithm.
type GeneticOptions struct {
	PopSize        int     // individuals per generation
	Generations    int     // number of generations to evolve
	MutationRate   float64 // per-child swap probability in [0,1]
	ElitismSize    int     // individuals copied unchanged, 0 ≤ ElitismSize ≤ PopSize
	TournamentSize int     // contestants per tournament, 1 ≤ TournamentSize ≤ PopSize
}

// ColonyOptions configures the ant colony optimizer.
type ColonyOptions struct {
	Iterations int     // colony rounds
	Ants       int     // ants dispatched per round
	Alpha      float64 // pheromone exponent, ≥ 0
	Beta       float64 // inverse-distance exponent, ≥ 0
	Decay      float64 // evaporation multiplier, ≥ 0 (typically in (0,1))
	Q          float64 // deposit numerator, > 0
	Workers    int     // parallel ants; ≤0 ⇒ GOMAXPROCS, 1 ⇒ sequential
}

// Options configures SolveWithMatrix and both engines.
type Options struct {
	// Algo selects the engine.
	Algo Algo

	// Seed drives every stochastic decision. Seed==0 maps to a fixed
	// internal seed, so runs are always reproducible.
	Seed int64

	// StartVertex is the fixed origin of returned tours.
	StartVertex int

	// Symmetric requests symmetry validation even for the GA. The ant
	// colony always requires it.
	Symmetric bool

	// EnableLocalSearch applies a 2-opt polish to the engine's best tour
	// (symmetric instances only).
	EnableLocalSearch bool

	// TwoOptMaxIters bounds accepted 2-opt moves; 0 means unlimited.
	TwoOptMaxIters int

	// Eps is the improvement threshold for 2-opt (Δ < −Eps).
	Eps float64

	Genetic GeneticOptions
	Colony  ColonyOptions

	// OnGeneration, if set, is called once per GA generation.
	OnGeneration func(GenerationReport)

	// OnIteration, if set, is called once per colony iteration.
	OnIteration func(IterationReport)
}

// DefaultOptions returns the reference parameters for both engines.
func DefaultOptions() Options {
	return Options{
		Algo:        Genetic,
		Seed:        DefaultSeed,
		StartVertex: 0,
		Eps:         DefaultEps,
		Genetic: GeneticOptions{
			PopSize:        DefaultPopSize,
			Generations:    DefaultGenerations,
			MutationRate:   DefaultMutationRate,
			ElitismSize:    DefaultElitismSize,
			TournamentSize: DefaultTournamentSize,
		},
		Colony: ColonyOptions{
			Iterations: DefaultIterations,
			Ants:       DefaultAnts,
			Alpha:      DefaultAlpha,
			Beta:       DefaultBeta,
			Decay:      DefaultDecay,
			Q:          DefaultQ,
		},
	}
}

// validateOptionsStandalone checks Options without referencing a matrix.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return optionErrorf("Eps", opts.Eps)
	}
	if opts.TwoOptMaxIters < 0 {
		return optionErrorf("TwoOptMaxIters", opts.TwoOptMaxIters)
	}
	switch opts.Algo {
	case Genetic:
		return validateGeneticOptions(opts.Genetic)
	case AntColony:
		return validateColonyOptions(opts.Colony)
	default:
		return ErrUnsupportedAlgorithm
	}
}

func validateGeneticOptions(g GeneticOptions) error {
	if g.PopSize < 1 {
		return optionErrorf("PopSize", g.PopSize)
	}
	if g.Generations < 0 {
		return optionErrorf("Generations", g.Generations)
	}
	if g.MutationRate < 0 || g.MutationRate > 1 || math.IsNaN(g.MutationRate) {
		return optionErrorf("MutationRate", g.MutationRate)
	}
	if g.ElitismSize < 0 || g.ElitismSize > g.PopSize {
		return optionErrorf("ElitismSize", g.ElitismSize)
	}
	// Tournament draws without replacement, so it cannot exceed the population.
	if g.TournamentSize < 1 || g.TournamentSize > g.PopSize {
		return optionErrorf("TournamentSize", g.TournamentSize)
	}

	return nil
}

func validateColonyOptions(c ColonyOptions) error {
	// At least one round is needed to produce any path.
	if c.Iterations < 1 {
		return optionErrorf("Iterations", c.Iterations)
	}
	if c.Ants < 1 {
		return optionErrorf("Ants", c.Ants)
	}
	if c.Alpha < 0 || math.IsNaN(c.Alpha) || math.IsInf(c.Alpha, 0) {
		return optionErrorf("Alpha", c.Alpha)
	}
	if c.Beta < 0 || math.IsNaN(c.Beta) || math.IsInf(c.Beta, 0) {
		return optionErrorf("Beta", c.Beta)
	}
	if c.Decay < 0 || math.IsNaN(c.Decay) || math.IsInf(c.Decay, 0) {
		return optionErrorf("Decay", c.Decay)
	}
	if !(c.Q > 0) || math.IsInf(c.Q, 0) {
		return optionErrorf("Q", c.Q)
	}

	return nil
}
