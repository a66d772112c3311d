package algorithms

import (
	"fmt"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dfs"
)

// IsConnected reports whether g is connected.
//
// Undirected: a BFS from vertex 0 must finish every vertex.
//
// Directed: a full DFS picks the forest root with the largest finish stamp,
// and a BFS from that root must finish every vertex. This verifies that one
// vertex reaches all others; it is not a strong-connectivity test, since
// mutual reachability is never checked.
//
// Errors: ErrNotLoaded.
// Complexity: O(n²).
func IsConnected(g core.View, opts ...Option) (Connectivity, error) {
	q := begin(buildOptions(opts), opIsConnected)
	res, err := isConnected(g, q)
	outcome := "disconnected"
	if res.Connected {
		outcome = "connected"
	}
	q.end(outcome, err)

	return res, err
}

func isConnected(g core.View, q *query) (Connectivity, error) {
	if _, err := loaded(g); err != nil {
		return Connectivity{}, err
	}
	q.describe(g)

	root := 0
	if g.Directed() {
		forest, err := dfs.DFS(g)
		if err != nil {
			return Connectivity{}, fmt.Errorf("algorithms: %w", err)
		}
		root = forest.LastFinishedRoot()
	}

	res, err := bfs.BFS(g, root)
	if err != nil {
		return Connectivity{}, fmt.Errorf("algorithms: %w", err)
	}

	return Connectivity{Connected: res.AllReached(), Root: root}, nil
}
