// SPDX-License-Identifier: MIT
// Package tsp - bounded parallel map used to fan out colony ants.
//
// Results are written by index, so output order equals input order no
// matter how goroutines are scheduled. The call returns only after every
// task finished (errgroup.Wait is the barrier before pheromone mutation).
package tsp

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMap applies fn to every element of in with at most workers tasks
// in flight. workers ≤ 0 ⇒ GOMAXPROCS; workers == 1 ⇒ plain loop.
//
// fn must not touch shared mutable state.
func parallelMap[T, R any](workers int, in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(in) <= 1 {
		for i := range in {
			out[i] = fn(in[i])
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range in {
		g.Go(func() error {
			out[i] = fn(in[i])
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	return out
}
