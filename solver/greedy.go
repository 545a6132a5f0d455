// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// greedy.go - centralized descending-weight greedy.

package solver

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/mwis/graph"
)

// Greedy visits vertices once in rank order (weight descending, TieBreak on
// ties) and keeps every vertex none of whose neighbors was kept before it.
// It is the baseline the local engines are measured against, and the
// annealer's cleanup pass.
//
// Complexity: O(V log V + E).
func Greedy(g graph.View, opts ...Option) (Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return Result{}, err
	}
	set := toRoaring(greedySet(g, o.TieBreak))
	return Result{
		Algorithm: Central,
		Set:       set,
		Weight:    graph.TotalWeight(g, set),
		Converged: true,
		Excluded:  complement(g.Order(), set),
		Remaining: roaring.New(),
	}, nil
}

// greedySet is the unchecked greedy pass.
func greedySet(g graph.View, rule TieBreak) *bitset.BitSet {
	n := g.Order()
	order := make([]int, n)
	w := make([]float64, n)
	for v := range order {
		order[v] = v
		w[v] = g.Weight(v)
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case outranks(w[a], w[b], a, b, rule):
			return -1
		case outranks(w[b], w[a], b, a, rule):
			return 1
		}
		return 0
	})

	picked := bitset.New(uint(n))
	blocked := bitset.New(uint(n))
	for _, v := range order {
		if blocked.Test(uint(v)) {
			continue
		}
		picked.Set(uint(v))
		for _, u := range g.Neighbors(v) {
			blocked.Set(uint(u))
		}
	}
	return picked
}

// complement returns [0,n) \ set.
func complement(n int, set *roaring.Bitmap) *roaring.Bitmap {
	out := roaring.New()
	out.AddRange(0, uint64(n))
	out.AndNot(set)
	return out
}
