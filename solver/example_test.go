package solver_test

import (
	"fmt"

	"github.com/katalvlaran/mwis/graph"
	"github.com/katalvlaran/mwis/solver"
)

// ExampleLocalGreedy solves the weighted 4-cycle 0-1-2-3-0 with weights
// [1,5,1,5]: both heavy vertices beat all their neighbors in round one.
func ExampleLocalGreedy() {
	g, _ := graph.FromEdges(4, []float64{1, 5, 1, 5}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, _ := solver.LocalGreedy(g)
	fmt.Println(res.Members(), res.Weight, res.Stats.Rounds)
	// Output:
	// [1 3] 10 1
}

// ExampleLocalGreedyBounded stops a 6-vertex path after one round.
func ExampleLocalGreedyBounded() {
	g, _ := graph.FromEdges(6, []float64{1, 2, 3, 4, 5, 6},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})

	res, _ := solver.LocalGreedyBounded(g, 1)
	fmt.Println(res.Members(), res.Remaining.ToArray(), res.Converged)
	// Output:
	// [5] [0 1 2 3] false
}

// ExampleRelaxedGreedy shows the derived parameters for epsilon 0.3.
func ExampleRelaxedGreedy() {
	g, _ := graph.FromEdges(2, []float64{2, 2}, [][2]int{{0, 1}})

	res, _ := solver.RelaxedGreedy(g, 0.3)
	fmt.Printf("%v alpha=%.2f beta=%.0f\n", res.Members(), res.Params.Alpha, res.Params.Beta)
	// Output:
	// [0] alpha=1.10 beta=10
}
