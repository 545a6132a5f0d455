// Package solver computes heavy independent sets in vertex-weighted graphs
// with decentralized heuristics: each vertex decides from what it can see in
// its own neighborhood, in synchronous rounds.
//
// Engines:
//
//   - LocalGreedy - a vertex joins when it outranks every undecided neighbor.
//     Variants: LocalGreedyOverhead (per-vertex message cost) and
//     LocalGreedyBounded (stop after k rounds, return a partial solution).
//
//   - RelaxedGreedy - a vertex is a candidate when it is within a factor
//     1+eps/3 of its heaviest undecided neighbor; candidates resolve by rank.
//     Larger eps, fewer rounds.
//
//   - Anneal - stochastic spin dynamics over a temperature schedule, followed
//     by a Greedy cleanup of the surviving candidates.
//
//   - Greedy - the centralized descending-weight baseline.
//
// Ranking: v outranks u if it is heavier, or equally heavy and preferred by
// the TieBreak (default LowerID). Both endpoints of an edge reach the same
// verdict, so no coordination is needed to settle ties.
//
// Determinism: LocalGreedy, RelaxedGreedy and Greedy are deterministic for
// any worker count. Anneal is deterministic for a fixed seed.
//
// Diagnostics: Result.Stats carries round, message and broadcast counts;
// WithInstrumentation adds the per-vertex overhead vector.
//
// Errors:
//
//	ErrGraphNil             - nil graph.
//	ErrOptionViolation      - invalid option value.
//	ErrUnsupportedAlgorithm - unknown Algorithm.
//	graph.ErrInvalidGraphInput - malformed View, rejected before any round.
//
// Complexity: LocalGreedy and RelaxedGreedy keep incremental remaining-neighbor
// counts, so bookkeeping is O(V + E) over the whole solve; only vertices next
// to a removal are re-evaluated in the following round.
package solver
