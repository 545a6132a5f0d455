// Package mwis is a toolkit of decentralized heuristics for the maximum
// weight independent set problem: given a graph with non-negative vertex
// weights, pick pairwise non-adjacent vertices of large total weight.
//
// Every engine simulates a synchronous message-passing protocol in which a
// vertex only sees its own weight and the state of its neighbors:
//
//	solver.LocalGreedy    - a vertex joins once it outweighs every
//	                        undecided neighbor; equals the central greedy
//	solver.RelaxedGreedy  - vertices within a (1+eps/3) factor of their
//	                        heaviest neighbor compete, trading quality for rounds
//	solver.Anneal         - Ising-style spin annealing with a greedy cleanup
//	solver.Greedy         - the centralized descending-weight baseline
//
// Layout:
//
//	graph/     - immutable CSR graphs, validation, induced subgraphs
//	solver/    - the engines, options, tie-break rules and statistics
//	builder/   - deterministic graph families and weight distributions
//	instance/  - YAML instance files, optionally zstd-compressed
//	config/    - TOML solver configuration
//	metrics/   - Prometheus instrumentation of solver runs
//	cmd/mwis/  - command-line front end (solve, bench, gen)
//
// Quick example:
//
//	g, _ := graph.FromEdges(4, []float64{1, 5, 1, 5}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	res, _ := solver.LocalGreedy(g)
//	fmt.Println(res.Members(), res.Weight) // [1 3] 10
package mwis
