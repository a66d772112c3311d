// Package builder provides reusable functional-options building blocks for
// dense weight-matrix fixtures: classic topologies (path, cycle, complete,
// star, wheel, grid, complete bipartite) and seeded random graphs, emitted
// straight into an n×n matrix and loaded as a core.Graph.
//
// The package offers the following key components:
//
//   - BuildGraph(n, bopts, cons...): allocates an n×n NoEdge matrix, applies
//     every Constructor in order, then loads the result.
//   - Constructors: Path, Cycle, Complete, Star, Wheel, Grid,
//     CompleteBipartite, RandomSparse. Each one occupies vertices 0..k-1 of
//     the matrix and fails with ErrVertexBudget when k > n.
//   - Edge-weight distributions (WeightFn): ConstantWeightFn, UniformWeightFn.
//     NoEdge (0) is never a legal weight; a WeightFn returning it surfaces
//     ErrZeroWeight.
//   - Options: WithDirected, WithSeed, WithRand, WithWeightFn,
//     WithConstantWeight, WithUniformWeight.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     matrices.
//   - Undirected builds write both W[u][v] and W[v][u] with one weight draw,
//     so the result is symmetric and classified undirected.
//   - Option constructors panic on meaningless values (nil RNG, empty weight
//     range); constructors return sentinel errors and never panic.
package builder
