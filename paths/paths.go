package paths

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/densegraph/core"
)

// Arrow separates consecutive vertices in the textual path form.
const Arrow = "->"

var (
	// ErrBadPath is returned by Parse for text that is not "v1->v2->...->vk".
	ErrBadPath = errors.New("paths: malformed path")

	// ErrMissingEdge is returned by Weight when two consecutive vertices are
	// not joined by an edge.
	ErrMissingEdge = errors.New("paths: missing edge")

	// ErrNotLoaded is returned by Weight on an unloaded graph.
	ErrNotLoaded = fmt.Errorf("paths: %w", core.ErrNotLoaded)
)

// Reconstruct walks pred back from dst to src and returns the sequence
// src, ..., dst. It reports false when dst cannot be traced back to src:
// an index is out of range, the chain ends at core.None, or it has not
// arrived after len(pred) steps.
// Complexity: O(path length).
func Reconstruct(pred []int, src, dst int) ([]int, bool) {
	n := len(pred)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, false
	}

	rev := []int{dst}
	cur := dst
	for steps := 0; cur != src; steps++ {
		if steps >= n {
			return nil, false
		}
		cur = pred[cur]
		if cur < 0 || cur >= n {
			return nil, false
		}
		rev = append(rev, cur)
	}

	// reverse to get src → dst
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}

// Format renders seq as "v1->v2->...->vk". An empty sequence renders as "".
func Format(seq []int) string {
	var sb strings.Builder
	for i, v := range seq {
		if i > 0 {
			sb.WriteString(Arrow)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Parse is the inverse of Format. Surrounding whitespace of each vertex is
// ignored; empty input, empty elements and negative indices are rejected.
func Parse(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrBadPath)
	}

	parts := strings.Split(s, Arrow)
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d %q", ErrBadPath, i, p)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative vertex %d", ErrBadPath, v)
		}
		out = append(out, v)
	}

	return out, nil
}

// Weight returns the sum of W[seq[k]][seq[k+1]] over the sequence.
// A single-vertex sequence weighs 0.
//
// Errors:
//   - ErrNotLoaded for a nil or unloaded graph.
//   - ErrMissingEdge when some consecutive pair has no edge (this includes
//     vertices outside [0, n), for which Weight reports core.NoEdge).
func Weight(g core.View, seq []int) (int, error) {
	if g == nil || !g.Loaded() {
		return 0, ErrNotLoaded
	}

	total := 0
	var w int
	for k := 0; k+1 < len(seq); k++ {
		if w = g.Weight(seq[k], seq[k+1]); w == core.NoEdge {
			return 0, fmt.Errorf("%w: %d->%d", ErrMissingEdge, seq[k], seq[k+1])
		}
		total += w
	}

	return total, nil
}
