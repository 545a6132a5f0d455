// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// anneal.go - Ising-style message-passing annealer with greedy cleanup.
//
// State: one spin in {-1,+1} per vertex, +1 meaning "in the candidate set".
//
// Per temperature step (inverse temperature beta = 10^e, e swept linearly):
//  1. every vertex draws a priority r[v] in [0,1); it is marked if r[v] < 1/N,
//     so about one vertex per step tries to move;
//  2. a marked vertex is eligible if no marked neighbor outranks it by
//     (priority, TieBreak); eligible vertices are therefore non-adjacent;
//  3. an eligible vertex flips if the energy drops, or with probability
//     exp(-beta*dH) otherwise.
//
// Energy of v holding spin s, with penalty A and reward B = A/3:
//
//	h(v, s) = A * s * Σ_u s_u  -  B * (Σ_u w_u * s_u + w_v * s)
//
// The +1 spins may still contain adjacent pairs; Greedy over the induced
// subgraph repairs them.

package solver

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mwis/graph"
)

// Anneal runs the annealer and returns the cleaned-up independent set.
// Result.Candidates holds the raw +1 spins before cleanup; Stats.Rounds is
// the number of temperature steps, Stats.Messages the priority exchanges of
// marked vertices and Stats.Updates the accepted flips.
//
// The run is fully determined by WithSeed or WithRand.
//
// Complexity: O(steps * (V + Σ deg(marked))) plus the cleanup pass.
func Anneal(g graph.View, opts ...Option) (Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return Result{}, err
	}

	n := g.Order()
	rng := streamFor(o)
	a := o.Penalty
	if a == 0 {
		a = float64(n)
	}
	b := a / 3

	w := make([]float64, n)
	spins := make([]int8, n)
	for v := 0; v < n; v++ {
		w[v] = g.Weight(v)
		spins[v] = -1
		if rng.Intn(2) == 1 {
			spins[v] = 1
		}
	}

	// h is the local energy of v holding spin s against its current neighbors.
	h := func(v int, s float64) float64 {
		var agree, reward float64
		for _, u := range g.Neighbors(v) {
			su := float64(spins[u])
			agree += s * su
			reward += w[u] * su
		}
		return a*agree - b*(reward+w[v]*s)
	}

	var stats Stats
	prio := make([]float64, n)
	marked := bitset.New(uint(n))
	var list []int
	threshold := 1 / float64(max(n, 1))

	for _, e := range schedule(o) {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		beta := math.Pow(10, e)

		marked.ClearAll()
		list = list[:0]
		for v := 0; v < n; v++ {
			prio[v] = rng.Float64()
			if prio[v] < threshold {
				marked.Set(uint(v))
				list = append(list, v)
			}
		}

		for _, v := range list {
			stats.Messages += int64(len(g.Neighbors(v)))
			if !leads(g, v, prio, marked, o.TieBreak) {
				continue
			}
			s := float64(spins[v])
			dH := h(v, -s) - h(v, s)
			if dH < 0 || rng.Float64() < math.Exp(-beta*dH) {
				spins[v] = -spins[v]
				stats.Updates++
			}
		}
		stats.Rounds++
		o.Logger.Debug("step done",
			"algo", Annealing,
			"step", stats.Rounds,
			"beta", beta,
			"marked", len(list))
	}

	cand := roaring.New()
	for v, s := range spins {
		if s > 0 {
			cand.Add(uint32(v))
		}
	}

	// Induced ids ascend with the original ids, so the tie-break carries over.
	sub, ids := graph.InducedSubgraph(g, cand)
	picked := greedySet(sub, o.TieBreak)
	set := roaring.New()
	for i, ok := picked.NextSet(0); ok; i, ok = picked.NextSet(i + 1) {
		set.Add(uint32(ids[i]))
	}
	stats.Broadcasts = int64(set.GetCardinality())

	return Result{
		Algorithm:  Annealing,
		Set:        set,
		Weight:     graph.TotalWeight(g, set),
		Converged:  true,
		Excluded:   complement(n, set),
		Remaining:  roaring.New(),
		Candidates: cand,
		Stats:      stats,
		Params:     Params{Penalty: a, Reward: b},
	}, nil
}

// leads reports whether marked vertex v has no marked neighbor with a higher
// (priority, TieBreak) rank.
func leads(g graph.View, v int, prio []float64, marked *bitset.BitSet, rule TieBreak) bool {
	for _, u := range g.Neighbors(v) {
		if marked.Test(uint(u)) && outranks(prio[u], prio[v], u, v, rule) {
			return false
		}
	}
	return true
}

// schedule returns the inverse-temperature exponents, evenly spaced over
// [MinExponent, MaxExponent].
func schedule(o Options) []float64 {
	if o.Steps == 1 {
		return []float64{o.MinExponent}
	}
	return floats.Span(make([]float64, o.Steps), o.MinExponent, o.MaxExponent)
}
