// SPDX-License-Identifier: MIT
// Package: mwis/graph
//
// types.go - the View interface and the CSR Graph.

// Package graph defines the read-only weighted graph surface consumed by the
// MWIS solvers, and an immutable compressed-sparse-row implementation of it.
//
// Vertices are dense integers in [0, N). Weights are non-negative and finite.
// Adjacency is symmetric with no self-loops and no parallel edges.
//
// Errors:
//
//	ErrInvalidGraphInput - umbrella for every *InputError.
//	ErrTooManyVertices   - order does not fit the uint32 id space.
package graph

import "math"

// maxOrder bounds the vertex count so ids fit in uint32 result bitmaps.
// Orders are compared as uint64 so the bound also builds where int is 32 bits.
const maxOrder uint64 = math.MaxUint32

// View is the read-only adjacency + weight accessor every solver consumes.
//
// Neighbors must run in O(degree) and the returned slice must not be mutated
// by callers. Implementations must stay unchanged for the duration of a solve.
type View interface {
	// Order returns the vertex count N.
	Order() int

	// Neighbors returns the vertices adjacent to v.
	Neighbors(v int) []int

	// Weight returns the weight of v.
	Weight(v int) float64
}

// Graph is an immutable weighted undirected graph in CSR layout.
//
// Neighbor lists are sorted ascending. A Graph can only be obtained through a
// validating constructor, so it always satisfies the View contract.
type Graph struct {
	offsets []int     // offsets[v]..offsets[v+1] index adj
	adj     []int     // concatenated sorted neighbor lists
	weights []float64 // weights[v]
}

// Order returns the vertex count.
func (g *Graph) Order() int { return len(g.weights) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return len(g.adj) / 2 }

// Neighbors returns the sorted neighbors of v. The slice aliases internal
// storage and must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.adj[g.offsets[v]:g.offsets[v+1]] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return g.offsets[v+1] - g.offsets[v] }

// Weight returns the weight of v.
func (g *Graph) Weight(v int) float64 { return g.weights[v] }

// Weights returns a copy of the weight vector.
func (g *Graph) Weights() []float64 {
	out := make([]float64, len(g.weights))
	copy(out, g.weights)
	return out
}

// HasEdge reports whether u and v are adjacent. O(log degree).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.Order() || v >= g.Order() {
		return false
	}
	nb := g.Neighbors(u)
	lo, hi := 0, len(nb)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if nb[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(nb) && nb[lo] == v
}

// Edges returns every edge once as [u, v] with u < v, in ascending order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.Size())
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}
