// Package negcycle finds and removes negative-weight cycles in a dense
// core.Graph.
//
// Detect augments the graph with a synthetic source joined to every vertex
// and runs Bellman-Ford from it; the first edge still relaxable after
// convergence leads, through the predecessor chain, to a negative cycle.
//
// Eliminate repeatedly detects a cycle on a working copy and deletes the
// edges along it until none remains. The result carries negative edges but
// no negative cycle, so Bellman-Ford yields finite distances on it.
//
// Eliminate counts removed cycles in the Prometheus counter
// densegraph_negative_cycles_stripped_total and logs each one at Debug
// through the logrus.FieldLogger given with WithLogger.
package negcycle
