// SPDX-License-Identifier: MIT
// Package: mwis/graph
//
// view.go - non-mutating derived views and set checks over a View.
//
// Determinism:
//   - Induced subgraphs renumber kept vertices in ascending original id order.
// Concurrency:
//   - Read-only on the source; results are fresh instances.

package graph

import (
	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
)

// InducedSubgraph returns the subgraph of g induced by keep, together with
// the mapping ids[i] = original vertex of subgraph vertex i. Ids in keep that
// are out of range are ignored. The source is not mutated.
//
// Complexity: O(|keep| + Σ deg(keep)) time.
func InducedSubgraph(g View, keep *roaring.Bitmap) (*Graph, []int) {
	n := g.Order()
	ids := make([]int, 0, keep.GetCardinality())
	index := make(map[int]int, keep.GetCardinality())
	it := keep.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if v >= n {
			break
		}
		index[v] = len(ids)
		ids = append(ids, v)
	}

	offsets := make([]int, len(ids)+1)
	adj := make([]int, 0)
	weights := make([]float64, len(ids))
	for i, v := range ids {
		weights[i] = g.Weight(v)
		for _, u := range g.Neighbors(v) {
			if j, ok := index[u]; ok {
				adj = append(adj, j)
			}
		}
		offsets[i+1] = len(adj)
	}
	// Kept ids ascend, so renumbered neighbors keep the source order; sort only
	// matters for foreign Views with unsorted lists.
	return compact(offsets, adj, weights), ids
}

// IsIndependent reports whether no two members of set are adjacent in g.
// Members outside [0, Order()) make the set invalid.
//
// Complexity: O(Σ deg(set)).
func IsIndependent(g View, set *roaring.Bitmap) bool {
	n := g.Order()
	it := set.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if v >= n {
			return false
		}
		for _, u := range g.Neighbors(v) {
			if set.Contains(uint32(u)) {
				return false
			}
		}
	}
	return true
}

// TotalWeight sums the weights of the members of set in ascending id order.
func TotalWeight(g View, set *roaring.Bitmap) float64 {
	ws := make([]float64, 0, set.GetCardinality())
	n := g.Order()
	it := set.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if v < n {
			ws = append(ws, g.Weight(v))
		}
	}
	return floats.Sum(ws)
}
