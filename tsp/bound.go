// SPDX-License-Identifier: MIT
// Package tsp - Held–Karp 1-tree lower bound for judging engine results.
//
// The metaheuristics give no optimality guarantee; the bound tells how far
// a returned tour can at most be from the optimum (gap = cost/LB − 1).
//
//   - Pick a root r. For multipliers π define reduced costs
//     c'_{ij} = c_{ij} + π_i + π_j.
//   - A minimum 1-tree T(π) is an MST over V\{r} on c' plus the two
//     cheapest r-incident edges.
//   - L(π) = c'(T(π)) − 2·Σπ_i ≤ OPT for every π.
//   - π is improved by subgradient ascent along s_i = deg_T(i) − 2.
//
// Symmetric instances only. No RNG: Prim and the root-edge choice break
// ties by vertex index, so the bound is reproducible.
//
// Complexity: O(MaxIter · n²) time, O(n) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspmeta/matrix"
)

// BoundOptions controls the subgradient loop of OneTreeBound.
type BoundOptions struct {
	// MaxIter is the number of subgradient steps (≥ 1).
	MaxIter int
	// Alpha is the step scale in (0, 2).
	Alpha float64
	// UpperBound is the cost of a known tour. When finite and positive the
	// step is α·(UB − L)/‖s‖²; otherwise α/(1+iter).
	UpperBound float64
}

// DefaultBoundOptions returns a small, deterministic schedule.
func DefaultBoundOptions() BoundOptions {
	return BoundOptions{MaxIter: 50, Alpha: 0.9, UpperBound: math.Inf(1)}
}

// OneTreeBound returns the best Held–Karp 1-tree bound found for dist,
// rooted at root, rounded to 1e-9. For n == 2 the only tour is returned
// exactly.
//
// Errors: matrix validation sentinels (symmetry enforced),
// ErrStartOutOfRange, ErrInvalidOption.
func OneTreeBound(dist matrix.Matrix, root int, opts BoundOptions) (float64, error) {
	if opts.MaxIter < 1 {
		return 0, optionErrorf("MaxIter", opts.MaxIter)
	}
	if !(opts.Alpha > 0 && opts.Alpha < 2) {
		return 0, optionErrorf("Alpha", opts.Alpha)
	}
	dt, err := newDistTable(dist, true)
	if err != nil {
		return 0, err
	}
	if err = validateStartVertex(dt.n, root); err != nil {
		return 0, err
	}
	if dt.n == minCities {
		return round1e9(2 * dt.at(0, 1)), nil
	}

	return round1e9(newOneTree(dt, root).ascend(opts)), nil
}

// oneTree holds the reusable working state of the bound.
type oneTree struct {
	dt     *distTable
	root   int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newOneTree(dt *distTable, root int) *oneTree {
	n := dt.n

	return &oneTree{
		dt:     dt,
		root:   root,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
}

// ascend runs the subgradient loop and returns the best L(π).
func (t *oneTree) ascend(opts BoundOptions) float64 {
	var (
		n     = t.dt.n
		best  = math.Inf(-1)
		useUB = opts.UpperBound > 0 && !math.IsInf(opts.UpperBound, 0)
		iter  int
		i     int
	)
	for iter = 0; iter < opts.MaxIter; iter++ {
		var sumPi float64
		for i = 0; i < n; i++ {
			sumPi += t.pi[i]
		}
		l := t.build() - 2*sumPi
		if l > best {
			best = l
		}

		var norm2 float64
		for i = 0; i < n; i++ {
			s := float64(t.deg[i] - 2)
			norm2 += s * s
		}
		if norm2 == 0 { // T(π) is a tour: the bound is tight
			break
		}

		var step float64
		if useUB {
			step = opts.Alpha * math.Max(opts.UpperBound-l, 0) / norm2
		} else {
			step = opts.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			t.pi[i] += step * float64(t.deg[i]-2)
		}
	}

	return best
}

func (t *oneTree) reduced(u, v int) float64 {
	return t.dt.at(u, v) + t.pi[u] + t.pi[v]
}

// build computes a minimum 1-tree on reduced costs, fills deg and returns
// its reduced cost. The graph is complete with finite weights, so a
// 1-tree always exists for n ≥ 3.
func (t *oneTree) build() float64 {
	var (
		n     = t.dt.n
		total float64
		v     int
	)
	for v = 0; v < n; v++ {
		t.deg[v] = 0
		t.inTree[v] = false
		t.parent[v] = -1
		t.key[v] = math.Inf(1)
	}
	start := 0
	if start == t.root {
		start = 1
	}
	t.key[start] = 0

	// Prim over V\{root}.
	for added := 0; added < n-1; added++ {
		best := -1
		for v = 0; v < n; v++ {
			if v == t.root || t.inTree[v] {
				continue
			}
			if best == -1 || t.key[v] < t.key[best] {
				best = v
			}
		}
		t.inTree[best] = true
		if p := t.parent[best]; p != -1 {
			total += t.reduced(best, p)
			t.deg[best]++
			t.deg[p]++
		}
		for v = 0; v < n; v++ {
			if v == t.root || t.inTree[v] {
				continue
			}
			if c := t.reduced(best, v); c < t.key[v] {
				t.key[v] = c
				t.parent[v] = best
			}
		}
	}

	// Two cheapest root edges.
	var (
		m1, m2     = math.Inf(1), math.Inf(1)
		m1To, m2To = -1, -1
	)
	for v = 0; v < n; v++ {
		if v == t.root {
			continue
		}
		c := t.reduced(t.root, v)
		if c < m1 {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 {
			m2, m2To = c, v
		}
	}
	total += m1 + m2
	t.deg[t.root] += 2
	t.deg[m1To]++
	t.deg[m2To]++

	return total
}
