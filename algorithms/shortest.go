package algorithms

import (
	"fmt"

	"github.com/katalvlaran/densegraph/bellmanford"
	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
	"github.com/katalvlaran/densegraph/negcycle"
	"github.com/katalvlaran/densegraph/paths"
)

// ShortestPath finds a minimum-weight path from src to dst.
//
// Dispatch by Classification:
//  1. src == dst: the one-vertex path, distance 0.
//  2. Unweighted: BFS, distance is the edge count.
//  3. Weighted, non-negative: Dijkstra.
//  4. Negative: negcycle.Eliminate strips every negative cycle from a copy,
//     then Bellman-Ford runs on the copy. If dst stays unreached there, a
//     BFS on the original graph decides between NegativeCycleOnly (reachable
//     in the original) and NoPath.
//
// Errors: ErrNotLoaded, then ErrVertexOutOfRange; nothing is computed before
// both checks pass.
// Complexity: O(n²) for 2 and 3, O(k·n³) for 4 with k stripped cycles.
func ShortestPath(g core.View, src, dst int, opts ...Option) (PathResult, error) {
	o := buildOptions(opts)
	q := begin(o, opShortestPath)
	res, err := shortestPath(g, src, dst, q, o)
	q.end(res.Outcome.String(), err)

	return res, err
}

func shortestPath(g core.View, src, dst int, q *query, o Options) (PathResult, error) {
	n, err := loaded(g)
	if err != nil {
		return PathResult{}, err
	}
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return PathResult{}, fmt.Errorf("%w: src %d, dst %d, n %d", ErrVertexOutOfRange, src, dst, n)
	}
	q.describe(g)

	out := PathResult{Src: src, Dst: dst, Outcome: NoPath}
	if src == dst {
		out.Outcome = PathFound
		out.Path = []int{src}
		return out, nil
	}

	switch {
	case !g.Weighted():
		return viaBFS(g, out)
	case !g.Negative():
		return viaDijkstra(g, out)
	default:
		return viaBellmanFord(g, out, o)
	}
}

func viaBFS(g core.View, out PathResult) (PathResult, error) {
	res, err := bfs.BFS(g, out.Src)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	if !res.Reached(out.Dst) {
		return out, nil
	}
	if out.Path, err = res.PathTo(out.Dst); err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	out.Outcome = PathFound
	out.Distance = res.Dist[out.Dst]

	return out, nil
}

func viaDijkstra(g core.View, out PathResult) (PathResult, error) {
	res, err := dijkstra.Dijkstra(g, out.Src)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	if res.Dist[out.Dst] == core.Infinity {
		return out, nil
	}
	if out.Path, err = res.PathTo(out.Dst); err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	out.Outcome = PathFound
	out.Distance = res.Dist[out.Dst]

	return out, nil
}

func viaBellmanFord(g core.View, out PathResult, o Options) (PathResult, error) {
	owned, err := materialize(g)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	clean, stripped, err := negcycle.Eliminate(owned, negcycle.WithLogger(o.Logger))
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	o.Logger.WithField("stripped", stripped).Debug("negative cycles removed before Bellman-Ford")

	res, err := bellmanford.BellmanFord(clean, out.Src)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	if res.Dist[out.Dst] != core.Infinity {
		if p, perr := res.PathTo(out.Dst); perr == nil {
			if w, werr := paths.Weight(g, p); werr == nil {
				out.Outcome = PathFound
				out.Path = p
				out.Distance = w
				return out, nil
			}
		}
	}

	// no finite route survives elimination; ask the original graph
	reach, err := bfs.BFS(g, out.Src)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	if reach.Reached(out.Dst) {
		out.Outcome = NegativeCycleOnly
	}

	return out, nil
}
