// Package densegraph answers structural queries on graphs given as a dense
// integer weight matrix: connectivity, shortest path, cycles, negative
// cycles and bipartiteness.
//
// What is a dense graph here?
//
//	A square n×n matrix W over vertices 0..n-1. W[i][j] != 0 is an edge
//	i→j of weight W[i][j]; zero means "no edge", so a true zero weight
//	cannot be expressed. The matrix is classified once at load time:
//		• Directed: W is not symmetric
//		• Weighted: some entry lies outside {0, 1}
//		• Negative: some entry is below zero
//
// Every query picks its algorithm from that classification:
//
//	unweighted            → BFS
//	weighted, no negative → Dijkstra
//	negative weights      → negative-cycle elimination, then Bellman–Ford
//
// Packages:
//
//	matrix/         dense integer matrix: construction, arithmetic, closure
//	core/           Graph, Classification, View and structural operations
//	paths/          vertex sequences: parse, format, weigh
//	bfs/, dfs/      traversals with hooks, cycle detection, topological order
//	dijkstra/       single-source shortest paths on non-negative weights
//	bellmanford/    shortest paths with negative weights, relaxable-edge report
//	negcycle/       negative-cycle detection and elimination
//	builder/        deterministic topology generators
//	converters/     bridges to gonum graph types
//	algorithms/     the query facade with logging, metrics and tracing
//	cmd/densegraph  command-line front end over YAML/JSON graph documents
//
// Quick example:
//
//	g, _ := core.New([][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
//	res, _ := algorithms.ShortestPath(g, 0, 2)
//	fmt.Println(res) // The shortest path is: 0->1->2
//
//	go get github.com/katalvlaran/densegraph
package densegraph
