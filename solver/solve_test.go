package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwis/graph"
	"github.com/katalvlaran/mwis/solver"
)

func TestGreedy(t *testing.T) {
	res, err := solver.Greedy(cycle4(t))
	require.NoError(t, err)
	assert.Equal(t, solver.Central, res.Algorithm)
	assert.Equal(t, []int{1, 3}, res.Members())
	assert.Equal(t, 10.0, res.Weight)
	assert.Equal(t, []uint32{0, 2}, res.Excluded.ToArray())

	// Star: the heavy hub blocks every leaf.
	star := mustGraph(t, []float64{5, 3, 3, 3}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	res, err = solver.Greedy(star)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Members())

	res, err = solver.Greedy(edgeless(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Len())
}

func TestSolve_Dispatch(t *testing.T) {
	g := cycle4(t)
	for _, algo := range solver.Algorithms() {
		res, err := solver.Solve(g, solver.WithAlgorithm(algo), solver.WithSeed(3))
		require.NoError(t, err, algo.String())
		assert.Equal(t, algo, res.Algorithm)
		assert.True(t, graph.IsIndependent(g, res.Set), algo.String())
	}

	res, err := solver.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, solver.Local, res.Algorithm)

	res, err = solver.Solve(g, solver.WithAlgorithm(solver.Relaxed), solver.WithEpsilon(0.9))
	require.NoError(t, err)
	assert.InDelta(t, 0.9, res.Params.Epsilon, 1e-12)

	_, err = solver.Solve(g, solver.WithAlgorithm(solver.Algorithm(42)))
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
}

func TestAlgorithmNames(t *testing.T) {
	for _, algo := range solver.Algorithms() {
		got, err := solver.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	got, err := solver.ParseAlgorithm("  Anneal ")
	require.NoError(t, err)
	assert.Equal(t, solver.Annealing, got)

	_, err = solver.ParseAlgorithm("milp")
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algorithm(9)", solver.Algorithm(9).String())
}

// brokenView is an asymmetric View that bypasses the graph constructors.
type brokenView struct{}

func (brokenView) Order() int { return 2 }
func (brokenView) Neighbors(v int) []int {
	if v == 0 {
		return []int{1}
	}
	return nil
}
func (brokenView) Weight(int) float64 { return 1 }

func TestInputRejection(t *testing.T) {
	engines := map[string]func(graph.View) (solver.Result, error){
		"local":   func(g graph.View) (solver.Result, error) { return solver.LocalGreedy(g) },
		"bounded": func(g graph.View) (solver.Result, error) { return solver.LocalGreedyBounded(g, 2) },
		"relaxed": func(g graph.View) (solver.Result, error) { return solver.RelaxedGreedy(g, 0.5) },
		"anneal":  func(g graph.View) (solver.Result, error) { return solver.Anneal(g) },
		"greedy":  func(g graph.View) (solver.Result, error) { return solver.Greedy(g) },
	}
	for name, run := range engines {
		t.Run(name, func(t *testing.T) {
			_, err := run(nil)
			require.ErrorIs(t, err, solver.ErrGraphNil)

			var typedNil *graph.Graph
			_, err = run(typedNil)
			require.ErrorIs(t, err, solver.ErrGraphNil)

			_, err = run(brokenView{})
			require.ErrorIs(t, err, graph.ErrInvalidGraphInput)
		})
	}
}

func TestOptionViolations(t *testing.T) {
	g := cycle4(t)
	cases := map[string]solver.Option{
		"negative rounds":  solver.WithMaxRounds(-1),
		"negative workers": solver.WithWorkers(-2),
		"epsilon":          solver.WithEpsilon(2),
		"steps":            solver.WithSchedule(0, 0, 1),
		"penalty":          solver.WithPenalty(-3),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := solver.LocalGreedy(g, opt)
			require.ErrorIs(t, err, solver.ErrOptionViolation)
		})
	}

	// nil options and nil values are ignored.
	res, err := solver.LocalGreedy(g, nil, solver.WithTieBreak(nil), solver.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.Members())
}

func TestDeriveSeed(t *testing.T) {
	a := solver.DeriveSeed(7, 0)
	b := solver.DeriveSeed(7, 1)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, solver.DeriveSeed(7, 0))
}

func TestMembersOnZeroResult(t *testing.T) {
	var r solver.Result
	assert.Empty(t, r.Members())
	assert.Equal(t, 0, r.Len())
}

func TestOutranks(t *testing.T) {
	assert.True(t, solver.Outranks(3, 7, 2, 0, nil))
	assert.False(t, solver.Outranks(2, 0, 3, 7, nil))

	// Equal weights fall back to the rule, and exactly one side wins.
	assert.True(t, solver.Outranks(2, 0, 2, 1, nil))
	assert.False(t, solver.Outranks(2, 1, 2, 0, nil))
	assert.True(t, solver.Outranks(2, 1, 2, 0, solver.HigherID))
	assert.False(t, solver.Outranks(2, 0, 2, 1, solver.HigherID))
}
