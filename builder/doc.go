// Package builder assembles deterministic weighted graph fixtures for the MWIS
// solvers: tests, benchmarks and the instance generator all draw from it.
//
// Components:
//
//   - Constructor: a closure that appends one component (vertices + edges) to
//     a graph.Builder. BuildGraph runs constructors in order; components are
//     vertex-disjoint and numbered consecutively.
//   - Topologies: Isolated, Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid, RandomSparse, RandomRegular.
//   - Vertex weights (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, ExponentialWeightFn, GeometricWeightFn; or an explicit
//     vector via WithWeights.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless values.
//
// Complexity is documented per constructor; every one is linear in its
// output except the O(n^2) pair scans of Complete and RandomSparse.
package builder
