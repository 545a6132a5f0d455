package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwis/graph"
)

// mustGraph builds a graph from an edge list or fails the test.
func mustGraph(t testing.TB, weights []float64, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(len(weights), weights, edges)
	require.NoError(t, err)
	return g
}

// cycle4 is the 4-cycle 0-1-2-3-0 with weights [1,5,1,5].
func cycle4(t testing.TB) *graph.Graph {
	return mustGraph(t, []float64{1, 5, 1, 5}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
}

// geometricPath is a path 0-1-...-(n-1) with weights 1.1^i, so every vertex
// is lighter than its right neighbor by the same factor.
func geometricPath(t testing.TB, n int) *graph.Graph {
	w := make([]float64, n)
	edges := make([][2]int, 0, n)
	for i := range w {
		w[i] = math.Pow(1.1, float64(i))
		if i > 0 {
			edges = append(edges, [2]int{i - 1, i})
		}
	}
	return mustGraph(t, w, edges...)
}

// randomGraph returns a G(n, p) graph. Weights are integers in [1, maxW],
// so small maxW forces many ties.
func randomGraph(t testing.TB, n int, p float64, maxW int, seed int64) *graph.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := graph.NewBuilder(n, int(float64(n*n)*p/2))
	for v := 0; v < n; v++ {
		b.AddVertex(float64(1 + rng.Intn(maxW)))
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				b.AddEdge(u, v)
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// edgeless returns n isolated vertices of weight 1..n.
func edgeless(t testing.TB, n int) *graph.Graph {
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i + 1)
	}
	return mustGraph(t, w)
}
