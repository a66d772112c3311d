package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/algorithms"
	"github.com/katalvlaran/densegraph/core"
)

// scanSides two-colors rows the way the reference sentences were produced:
// increasing index, white vertices open gray, neighbors take the other color.
func scanSides(rows [][]int) (gray, black []int, ok bool) {
	const (
		white = iota
		grayC
		blackC
	)
	n := len(rows)
	col := make([]int, n)
	for i := 0; i < n; i++ {
		if col[i] == white {
			col[i] = grayC
			gray = append(gray, i)
		}
		for j := 0; j < n; j++ {
			if rows[i][j] == core.NoEdge {
				continue
			}
			if col[j] == col[i] {
				return nil, nil, false
			}
			if col[j] != white {
				continue
			}
			if col[i] == grayC {
				col[j] = blackC
				black = append(black, j)
			} else {
				col[j] = grayC
				gray = append(gray, j)
			}
		}
	}

	return gray, black, true
}

// twoColorable tries every side assignment.
func twoColorable(rows [][]int) bool {
	n := len(rows)
	for mask := 0; mask < 1<<n; mask++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			for j := 0; j < n; j++ {
				if rows[i][j] != core.NoEdge && (mask>>i)&1 == (mask>>j)&1 {
					ok = false
					break
				}
			}
		}
		if ok {
			return true
		}
	}

	return false
}

func TestIsBipartite_PartitionsInScanOrder(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want string
	}{
		{
			name: "isolated vertex between",
			rows: [][]int{
				{0, 0, 0, 1},
				{0, 0, 0, 0},
				{0, 0, 0, 1},
				{1, 0, 1, 0},
			},
			want: "The graph is bipartite: A={0, 1, 2}, B={3}.",
		},
		{
			name: "star from the last vertex",
			rows: [][]int{
				{0, 0, 1},
				{0, 0, 1},
				{1, 1, 0},
			},
			want: "The graph is bipartite: A={0, 1}, B={2}.",
		},
		{
			name: "square",
			rows: [][]int{
				{0, 1, 0, 1},
				{1, 0, 1, 0},
				{0, 1, 0, 1},
				{1, 0, 1, 0},
			},
			want: "The graph is bipartite: A={0, 2}, B={1, 3}.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := algorithms.IsBipartite(mustGraph(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.String())
		})
	}
}

func TestIsBipartite_MatchesScanAndExhaustiveColoring(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	scanned, rescued := 0, 0
	for iter := 0; iter < 2000; iter++ {
		n := 1 + rng.Intn(7)
		rows := symmetric(randomRows(rng, n, 3, 1, 4, false))

		res, err := algorithms.IsBipartite(mustGraph(t, rows))
		require.NoError(t, err)
		require.Equal(t, twoColorable(rows), res.Bipartite, "rows %v", rows)

		gray, black, ok := scanSides(rows)
		if ok {
			scanned++
			assert.Equal(t, gray, res.A, "rows %v", rows)
			assert.Equal(t, black, res.B, "rows %v", rows)
		} else if res.Bipartite {
			rescued++
		}
	}
	assert.Positive(t, scanned)
	assert.Positive(t, rescued)
}
