// SPDX-License-Identifier: MIT
// Package tsp - RNG utilities shared by both engines.
//
// Every stochastic decision (chromosome shuffles, tournaments, cut points,
// mutation coins, ant start cities and roulette spins) draws from an
// explicit *rand.Rand created here; there is no package-level generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Ants get their own streams from deriveRNG before they are dispatched,
//     so colony results do not depend on worker scheduling.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer; small input changes give well-spread outputs).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream identifier. base.Int63() is consumed once per call, so calls must
// happen in a fixed order on the coordinating goroutine.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent = defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleDistinct draws k distinct integers uniformly from [lo, hi) without
// replacement, in draw order. It uses a partial Fisher–Yates over a scratch
// buffer sized hi-lo.
//
// Contract: 0 ≤ k ≤ hi-lo.
// Complexity: O(hi-lo) time and space.
func sampleDistinct(rng *rand.Rand, lo, hi, k int) []int {
	var (
		span = hi - lo
		pool = make([]int, span)
		out  = make([]int, k)
		i, j int
	)
	for i = 0; i < span; i++ {
		pool[i] = lo + i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(span-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = pool[i]
	}

	return out
}

// distinctPair draws two distinct integers from [lo, hi), returned as (a, b)
// with a < b. Requires hi-lo ≥ 2.
//
// Complexity: O(1).
func distinctPair(rng *rand.Rand, lo, hi int) (int, int) {
	var (
		span = hi - lo
		a    = rng.Intn(span)
		b    = rng.Intn(span - 1)
	)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}

	return lo + a, lo + b
}
