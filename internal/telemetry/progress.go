// SPDX-License-Identifier: MIT
// Package telemetry turns solver hooks into logs and metrics.
//
// The solver packages never log; callers attach a Progress and/or a
// Collector to tsp.Options and the hooks do the reporting.
package telemetry

import (
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/tspmeta/tsp"
)

// DefaultEvery is the reporting interval in generations/iterations.
const DefaultEvery = 10

// Progress logs engine progress every Every rounds.
type Progress struct {
	log   *slog.Logger
	every int
}

// NewProgress returns a reporter that logs through log every `every`
// rounds (every ≤ 0 ⇒ DefaultEvery). A nil log uses slog.Default().
func NewProgress(log *slog.Logger, every int) *Progress {
	if log == nil {
		log = slog.Default()
	}
	if every <= 0 {
		every = DefaultEvery
	}

	return &Progress{log: log, every: every}
}

// Attach chains the reporter into opts' hooks.
func (p *Progress) Attach(opts *tsp.Options) {
	opts.OnGeneration = chainGeneration(opts.OnGeneration, p.OnGeneration)
	opts.OnIteration = chainIteration(opts.OnIteration, p.OnIteration)
}

// OnGeneration logs generations 0, every, 2·every, ...
func (p *Progress) OnGeneration(r tsp.GenerationReport) {
	if r.Generation%p.every != 0 {
		return
	}
	p.log.Info("generation",
		slog.Int("generation", r.Generation),
		slog.Float64("best_distance", r.BestCost),
		slog.Float64("mean_distance", r.MeanCost),
		slog.String("best_tour", tsp.DebugString(r.BestTour)),
	)
}

// OnIteration logs iterations 0, every, 2·every, ...
func (p *Progress) OnIteration(r tsp.IterationReport) {
	if r.Iteration%p.every != 0 {
		return
	}
	p.log.Info("iteration",
		slog.Int("iteration", r.Iteration),
		slog.Float64("best_distance", r.BestCost),
		slog.Float64("iteration_best", r.IterationBest),
		slog.Float64("median_distance", r.MedianCost),
	)
}

// Result logs the final tour.
func (p *Progress) Result(algo tsp.Algo, res tsp.TSResult, elapsed time.Duration) {
	p.log.Info("result",
		slog.String("algo", algo.String()),
		slog.Float64("distance", res.Cost),
		slog.String("tour", tsp.DebugString(res.Tour)),
		slog.Duration("elapsed", elapsed),
	)
}

// Bound logs a lower bound on the optimum and the worst-case gap of cost.
func (p *Progress) Bound(lowerBound, cost float64) {
	gap := math.Inf(1)
	if lowerBound > 0 {
		gap = cost/lowerBound - 1
	}
	p.log.Info("bound",
		slog.Float64("lower_bound", lowerBound),
		slog.Float64("gap", gap),
	)
}

func chainGeneration(prev, next func(tsp.GenerationReport)) func(tsp.GenerationReport) {
	if prev == nil {
		return next
	}

	return func(r tsp.GenerationReport) {
		prev(r)
		next(r)
	}
}

func chainIteration(prev, next func(tsp.IterationReport)) func(tsp.IterationReport) {
	if prev == nil {
		return next
	}

	return func(r tsp.IterationReport) {
		prev(r)
		next(r)
	}
}
