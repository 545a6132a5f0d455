// SPDX-License-Identifier: MIT
// Package: mwis/graph
//
// build.go - validating constructors for Graph.
//
// Three ingestion shapes are supported, matching how weighted conflict graphs
// usually arrive: an edge list, per-vertex adjacency lists, and a dense
// adjacency matrix (any gonum mat.Matrix; non-zero entries are edges).
//
// Determinism:
//   - Neighbor lists are always sorted ascending, independent of input order.

package graph

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// FromEdges builds a Graph with n vertices, the given weights and undirected
// edges. Repeated edges (in either orientation) collapse into one.
//
// Errors: *InputError for weight count/sign/finiteness, out-of-range endpoints
// and self-loops.
//
// Complexity: O(V + E log d) time, O(V + E) space.
func FromEdges(n int, weights []float64, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, detailError(ConstraintShape, "negative order %d", n)
	}
	if err := validateWeights(n, weights); err != nil {
		return nil, err
	}

	// Count degrees, then scatter both orientations of every edge.
	deg := make([]int, n+1)
	for _, e := range edges {
		if err := validateEndpoints(n, e[0], e[1]); err != nil {
			return nil, err
		}
		deg[e[0]]++
		deg[e[1]]++
	}
	offsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + deg[v]
	}
	adj := make([]int, offsets[n])
	fill := make([]int, n)
	copy(fill, offsets[:n])
	for _, e := range edges {
		adj[fill[e[0]]] = e[1]
		fill[e[0]]++
		adj[fill[e[1]]] = e[0]
		fill[e[1]]++
	}

	return compact(offsets, adj, slices.Clone(weights)), nil
}

// FromAdjacency builds a Graph from per-vertex neighbor lists. Lists need not
// be sorted, but must be symmetric and free of repeats and self-loops.
//
// Complexity: O(V + E log d) time, O(V + E) space.
func FromAdjacency(lists [][]int, weights []float64) (*Graph, error) {
	n := len(lists)
	if err := validateWeights(n, weights); err != nil {
		return nil, err
	}
	offsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + len(lists[v])
	}
	adj := make([]int, 0, offsets[n])
	for v := 0; v < n; v++ {
		start := len(adj)
		for _, u := range lists[v] {
			if err := validateEndpoints(n, v, u); err != nil {
				return nil, err
			}
			adj = append(adj, u)
		}
		row := adj[start:]
		slices.Sort(row)
		for i := 1; i < len(row); i++ {
			if row[i] == row[i-1] {
				return nil, edgeError(ConstraintDuplicateNeighbor, v, row[i])
			}
		}
	}
	if err := checkSortedSymmetric(offsets, adj); err != nil {
		return nil, err
	}

	return &Graph{offsets: offsets, adj: adj, weights: slices.Clone(weights)}, nil
}

// FromDense builds a Graph from a square adjacency matrix: entry (i, j) != 0
// means i and j are adjacent. The matrix must be symmetric in its non-zero
// pattern and have a zero diagonal.
//
// Complexity: O(V^2) time, O(V + E) space.
func FromDense(m mat.Matrix, weights []float64) (*Graph, error) {
	r, c := m.Dims()
	if r != c {
		return nil, detailError(ConstraintShape, "got %dx%d", r, c)
	}
	if err := validateWeights(r, weights); err != nil {
		return nil, err
	}
	offsets := make([]int, r+1)
	adj := make([]int, 0)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			if m.At(i, j) == 0 {
				continue
			}
			if i == j {
				return nil, vertexError(ConstraintSelfLoop, i)
			}
			if m.At(j, i) == 0 {
				return nil, edgeError(ConstraintAsymmetric, i, j)
			}
			adj = append(adj, j)
		}
		offsets[i+1] = len(adj)
	}

	return &Graph{offsets: offsets, adj: adj, weights: slices.Clone(weights)}, nil
}

// compact sorts every neighbor list and drops repeats in place, rewriting
// offsets. Input lists are already symmetric.
func compact(offsets, adj []int, weights []float64) *Graph {
	n := len(offsets) - 1
	out := 0
	start := 0
	for v := 0; v < n; v++ {
		row := adj[start:offsets[v+1]]
		start = offsets[v+1]
		slices.Sort(row)
		offsets[v] = out
		for i, u := range row {
			if i > 0 && u == row[i-1] {
				continue
			}
			adj[out] = u
			out++
		}
	}
	offsets[n] = out
	return &Graph{offsets: offsets, adj: adj[:out:out], weights: weights}
}

// Builder accumulates vertices and edges incrementally and produces a Graph.
// The zero value is ready to use. Builder is not safe for concurrent use.
type Builder struct {
	weights []float64
	edges   [][2]int
}

// NewBuilder returns an empty Builder with capacity hints.
func NewBuilder(vertexHint, edgeHint int) *Builder {
	return &Builder{
		weights: make([]float64, 0, max(vertexHint, 0)),
		edges:   make([][2]int, 0, max(edgeHint, 0)),
	}
}

// AddVertex appends a vertex with weight w and returns its id.
func (b *Builder) AddVertex(w float64) int {
	b.weights = append(b.weights, w)
	return len(b.weights) - 1
}

// AddEdge records the undirected edge u-v. Endpoints are validated by Build.
func (b *Builder) AddEdge(u, v int) {
	b.edges = append(b.edges, [2]int{u, v})
}

// SetWeight replaces the weight of an already added vertex. Out-of-range ids
// are ignored here and cannot reach Build.
func (b *Builder) SetWeight(v int, w float64) {
	if v >= 0 && v < len(b.weights) {
		b.weights[v] = w
	}
}

// Order returns the number of vertices added so far.
func (b *Builder) Order() int { return len(b.weights) }

// Build validates the accumulated input and returns the Graph.
func (b *Builder) Build() (*Graph, error) {
	return FromEdges(len(b.weights), b.weights, b.edges)
}
