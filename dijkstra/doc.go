// Package dijkstra provides single-source shortest paths on a dense
// core.View with non-negative integer weights.
//
// The algorithm runs n-1 rounds. Each round picks, by linear scan, the
// unvisited vertex with the smallest finite tentative distance (lowest index
// on ties), marks it visited, and relaxes its edges to unvisited vertices.
// Unreached vertices keep core.Infinity and predecessor core.None.
//
// Graphs classified as negative are rejected with ErrNegativeWeight; use the
// bellmanford package for those.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo(4)
//	fmt.Println(res.Dist[4], path)
package dijkstra
