package graph_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwis/graph"
)

// requireConstraint asserts err is an *InputError for the given constraint.
func requireConstraint(t *testing.T, err error, want graph.Constraint) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrInvalidGraphInput)
	var ie *graph.InputError
	require.True(t, errors.As(err, &ie), "want *InputError, got %T", err)
	require.Equal(t, want, ie.Constraint)
}

func TestFromEdges_SortsAndDeduplicates(t *testing.T) {
	g, err := graph.FromEdges(4, []float64{1, 2, 3, 4}, [][2]int{{2, 0}, {0, 1}, {1, 0}, {3, 0}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
	assert.Equal(t, 3, g.Degree(0))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(-1, 2))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, g.Edges())
}

func TestFromEdges_Rejects(t *testing.T) {
	_, err := graph.FromEdges(3, []float64{1, 2}, nil)
	requireConstraint(t, err, graph.ConstraintWeightCount)

	_, err = graph.FromEdges(2, []float64{1, -0.5}, nil)
	requireConstraint(t, err, graph.ConstraintNegativeWeight)

	_, err = graph.FromEdges(2, []float64{1, math.NaN()}, nil)
	requireConstraint(t, err, graph.ConstraintNonFiniteWeight)

	_, err = graph.FromEdges(2, []float64{1, math.Inf(1)}, nil)
	requireConstraint(t, err, graph.ConstraintNonFiniteWeight)

	_, err = graph.FromEdges(2, []float64{1, 1}, [][2]int{{1, 1}})
	requireConstraint(t, err, graph.ConstraintSelfLoop)

	_, err = graph.FromEdges(2, []float64{1, 1}, [][2]int{{0, 2}})
	requireConstraint(t, err, graph.ConstraintVertexRange)

	_, err = graph.FromEdges(-1, nil, nil)
	requireConstraint(t, err, graph.ConstraintShape)
}

func TestFromEdges_Empty(t *testing.T) {
	g, err := graph.FromEdges(0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Edges())
}

func TestFromAdjacency(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{2, 1}, {0}, {0}}, []float64{3, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, 2, g.Size())

	_, err = graph.FromAdjacency([][]int{{1}, {}}, []float64{1, 1})
	requireConstraint(t, err, graph.ConstraintAsymmetric)

	_, err = graph.FromAdjacency([][]int{{1, 1}, {0}}, []float64{1, 1})
	requireConstraint(t, err, graph.ConstraintDuplicateNeighbor)

	_, err = graph.FromAdjacency([][]int{{0}}, []float64{1})
	requireConstraint(t, err, graph.ConstraintSelfLoop)
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	g, err := graph.FromDense(m, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, g.Edges())
	assert.Equal(t, []float64{1, 2, 3}, g.Weights())

	_, err = graph.FromDense(mat.NewDense(2, 3, nil), []float64{1, 1})
	requireConstraint(t, err, graph.ConstraintShape)

	_, err = graph.FromDense(mat.NewDense(2, 2, []float64{1, 0, 0, 0}), []float64{1, 1})
	requireConstraint(t, err, graph.ConstraintSelfLoop)

	_, err = graph.FromDense(mat.NewDense(2, 2, []float64{0, 1, 0, 0}), []float64{1, 1})
	requireConstraint(t, err, graph.ConstraintAsymmetric)

	_, err = graph.FromDense(mat.NewDense(2, 2, nil), []float64{1})
	requireConstraint(t, err, graph.ConstraintWeightCount)
}

func TestBuilder(t *testing.T) {
	b := graph.NewBuilder(3, 2)
	a := b.AddVertex(1)
	c := b.AddVertex(2)
	d := b.AddVertex(3)
	b.AddEdge(a, c)
	b.AddEdge(c, d)
	b.SetWeight(d, 9)
	b.SetWeight(99, 1)
	assert.Equal(t, 3, b.Order())

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 9.0, g.Weight(d))
	assert.Equal(t, 2, g.Size())

	var zero graph.Builder
	zero.AddVertex(1)
	zero.AddEdge(0, 0)
	_, err = zero.Build()
	requireConstraint(t, err, graph.ConstraintSelfLoop)
}

func TestWeightsIsACopy(t *testing.T) {
	in := []float64{1, 2}
	g, err := graph.FromEdges(2, in, nil)
	require.NoError(t, err)
	in[0] = 42
	ws := g.Weights()
	ws[1] = 42
	assert.Equal(t, 1.0, g.Weight(0))
	assert.Equal(t, 2.0, g.Weight(1))
}

func TestInducedSubgraph(t *testing.T) {
	// 0-1-2-3-0 plus chord 0-2.
	g, err := graph.FromEdges(4, []float64{1, 2, 3, 4}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
	require.NoError(t, err)

	sub, ids := graph.InducedSubgraph(g, roaring.BitmapOf(0, 2, 3, 17))
	assert.Equal(t, []int{0, 2, 3}, ids)
	assert.Equal(t, 3, sub.Order())
	assert.Equal(t, []float64{1, 3, 4}, sub.Weights())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, sub.Edges())

	empty, ids := graph.InducedSubgraph(g, roaring.New())
	assert.Equal(t, 0, empty.Order())
	assert.Empty(t, ids)
}

func TestIsIndependentAndTotalWeight(t *testing.T) {
	g, err := graph.FromEdges(4, []float64{1, 5, 1, 5}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	assert.True(t, graph.IsIndependent(g, roaring.BitmapOf(1, 3)))
	assert.False(t, graph.IsIndependent(g, roaring.BitmapOf(0, 1)))
	assert.False(t, graph.IsIndependent(g, roaring.BitmapOf(9)))
	assert.True(t, graph.IsIndependent(g, roaring.New()))

	assert.Equal(t, 10.0, graph.TotalWeight(g, roaring.BitmapOf(1, 3)))
	assert.Equal(t, 0.0, graph.TotalWeight(g, roaring.New()))
}

// listView is a foreign View used to exercise Validate.
type listView struct {
	adj [][]int
	w   []float64
}

func (l listView) Order() int { return len(l.w) }
func (l listView) Neighbors(v int) []int { return l.adj[v] }
func (l listView) Weight(v int) float64 { return l.w[v] }

func TestValidate(t *testing.T) {
	ok := listView{adj: [][]int{{1}, {0, 2}, {1}}, w: []float64{1, 1, 1}}
	require.NoError(t, graph.Validate(ok))

	g, err := graph.FromEdges(1, []float64{1}, nil)
	require.NoError(t, err)
	require.NoError(t, graph.Validate(g))

	cases := []struct {
		name string
		view listView
		want graph.Constraint
	}{
		{"negative", listView{adj: [][]int{{}}, w: []float64{-1}}, graph.ConstraintNegativeWeight},
		{"nan", listView{adj: [][]int{{}}, w: []float64{math.NaN()}}, graph.ConstraintNonFiniteWeight},
		{"loop", listView{adj: [][]int{{0}}, w: []float64{1}}, graph.ConstraintSelfLoop},
		{"range", listView{adj: [][]int{{3}}, w: []float64{1}}, graph.ConstraintVertexRange},
		{"asym", listView{adj: [][]int{{1}, {}}, w: []float64{1, 1}}, graph.ConstraintAsymmetric},
		{"dup", listView{adj: [][]int{{1, 1}, {0}}, w: []float64{1, 1}}, graph.ConstraintDuplicateNeighbor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireConstraint(t, graph.Validate(tc.view), tc.want)
		})
	}
}

// hugeView reports an order past the uint32 id space without storing it.
type hugeView struct{ order int }

func (h hugeView) Order() int { return h.order }
func (h hugeView) Neighbors(int) []int { return nil }
func (h hugeView) Weight(int) float64 { return 1 }

func TestValidate_TooManyVertices(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("order beyond uint32 is not representable as int")
	}
	var order uint64 = math.MaxUint32
	order++
	err := graph.Validate(hugeView{order: int(order)})
	require.ErrorIs(t, err, graph.ErrTooManyVertices)
	require.ErrorIs(t, err, graph.ErrInvalidGraphInput)

	err = graph.Validate(hugeView{order: -1})
	requireConstraint(t, err, graph.ConstraintShape)
}

func TestInputErrorMessages(t *testing.T) {
	_, err := graph.FromEdges(2, []float64{1, 1}, [][2]int{{0, 5}})
	assert.Contains(t, err.Error(), "edge 0-5")

	_, err = graph.FromEdges(1, []float64{-1}, nil)
	assert.Contains(t, err.Error(), "vertex 0")

	_, err = graph.FromEdges(2, []float64{1}, nil)
	assert.Contains(t, err.Error(), "got 1 weights for 2 vertices")
}
