package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/algorithms"
	"github.com/katalvlaran/densegraph/dfs"
	"github.com/katalvlaran/densegraph/paths"
)

func newInfoCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the graph summary and its classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			c := s.graph.Classification()
			if s.doc.Name != "" {
				fmt.Fprintf(out, "Graph %q\n", s.doc.Name)
			}
			fmt.Fprintln(out, s.graph)
			fmt.Fprintf(out, "directed=%t weighted=%t negative=%t\n", c.Directed, c.Weighted, c.Negative)
			fmt.Fprintf(out, "strongly connected=%t\n", s.graph.StronglyConnected())
			return nil
		},
	}
}

func newConnectedCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "connected",
		Short: "Report whether the graph is connected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := algorithms.IsConnected(s.graph, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newPathCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "path SRC DST",
		Short: "Print a shortest path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseVertex(args[0])
			if err != nil {
				return err
			}
			dst, err := parseVertex(args[1])
			if err != nil {
				return err
			}
			res, err := algorithms.ShortestPath(s.graph, src, dst, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newCycleCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Print a cycle of the graph, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := algorithms.ContainsCycle(s.graph, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newBipartiteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "bipartite",
		Short: "Report whether the graph is bipartite and print both sides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := algorithms.IsBipartite(s.graph, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newNegCycleCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "negcycle",
		Short: "Print a negative-weight cycle, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := algorithms.NegativeCycle(s.graph, s.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// newOrderCommand prints a topological order, or states that none exists.
func newOrderCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print a topological order of the vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := dfs.TopologicalSort(s.graph)
			if errors.Is(err, dfs.ErrCycleDetected) {
				fmt.Fprintln(cmd.OutOrStdout(), "The graph has no topological order.")
				return nil
			}
			if err != nil {
				return err
			}
			parts := make([]string, len(order))
			for i, v := range order {
				parts[i] = strconv.Itoa(v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The topological order is: %s.\n", strings.Join(parts, ", "))
			return nil
		},
	}
}

func newWeighCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "weigh PATH",
		Short: "Sum the edge weights along a path such as 0->1->2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := paths.Parse(args[0])
			if err != nil {
				return err
			}
			w, err := paths.Weight(s.graph, seq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The path %s weighs %d.\n", paths.Format(seq), w)
			return nil
		},
	}
}

// newAllCommand runs every query, using 0 -> n-1 for the shortest path.
func newAllCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every query against the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			opts := s.options()
			fmt.Fprintln(out, s.graph)

			conn, err := algorithms.IsConnected(s.graph, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, conn)

			sp, err := algorithms.ShortestPath(s.graph, 0, s.graph.NumVertices()-1, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, sp)

			cyc, err := algorithms.ContainsCycle(s.graph, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cyc)

			bip, err := algorithms.IsBipartite(s.graph, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, bip)

			neg, err := algorithms.NegativeCycle(s.graph, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, neg)
			return nil
		},
	}
}

func parseVertex(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "parse vertex %q", arg)
	}

	return v, nil
}
