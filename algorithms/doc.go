// Package algorithms answers whole-graph queries on a dense core.View by
// dispatching to the traversal and shortest-path primitives.
//
// Queries:
//
//   - IsConnected   – BFS from 0 (undirected) or from the last-finished DFS
//     root (directed).
//   - ShortestPath  – BFS, Dijkstra or negative-cycle elimination followed by
//     Bellman-Ford, chosen by the graph's Classification.
//   - ContainsCycle – cycle-sensitive DFS.
//   - IsBipartite   – BFS two-coloring of the underlying undirected graph.
//   - NegativeCycle – Bellman-Ford on the graph plus a synthetic source.
//
// Every query validates its input before doing any work and fails with
// ErrNotLoaded (wrapping core.ErrNotLoaded) or ErrVertexOutOfRange. All
// other situations, such as a disconnected graph or a missing path, are
// ordinary outcomes carried by the result value, whose String method yields
// the reference sentence ("The graph is connected.", "The shortest path is:
// 0->1->2", ...).
//
// Observability:
//
//	Each query opens an OpenTelemetry span (tracer "densegraph.algorithms",
//	from the global provider unless WithTracerProvider says otherwise)
//	under the context given with WithContext, increments
//	densegraph_queries_total{operation,outcome} and observes
//	densegraph_query_duration_seconds{operation}. WithLogger routes a Debug
//	entry per query to a logrus.FieldLogger.
//
// The context is only used to parent spans; queries are not cancellable.
package algorithms
