package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/builder"
)

// generateInput holds the flags of the generate command.
type generateInput struct {
	directed bool
	seed     int64
	weights  string
	p        float64
}

// newGenerateCommand prints a synthetic graph document. It does not read one.
func newGenerateCommand() *cobra.Command {
	in := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate KIND N [M]",
		Short: "Print a generated graph document (path, cycle, complete, star, wheel, grid, bipartite, random)",
		Long: `Print a generated graph document.

grid and bipartite take two sizes: rows and columns, or the two side sizes.
Every other kind takes the vertex count.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]int, 0, 2)
			for _, a := range args[1:] {
				v, err := strconv.Atoi(a)
				if err != nil {
					return errors.Wrapf(err, "parse size %q", a)
				}
				sizes = append(sizes, v)
			}
			n, cons, err := constructorFor(args[0], sizes, in.p)
			if err != nil {
				return err
			}
			opts, err := in.builderOptions()
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph(n, opts, cons)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"kind": args[0], "vertices": n}).Debug("Graph generated")

			return WriteDocument(cmd.OutOrStdout(), &Document{
				Name:   strings.Join(args, "-"),
				Matrix: g.Rows(),
			})
		},
	}
	cmd.Flags().BoolVar(&in.directed, "directed", false, "emit one arc per edge")
	cmd.Flags().Int64Var(&in.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&in.weights, "weights", "", "uniform weight range MIN:MAX, zero excluded (default all 1)")
	cmd.Flags().Float64Var(&in.p, "p", 0.3, "edge probability for random graphs")

	return cmd
}

func (in *generateInput) builderOptions() ([]builder.BuilderOption, error) {
	opts := []builder.BuilderOption{
		builder.WithDirected(in.directed),
		builder.WithSeed(in.seed),
	}
	if in.weights == "" {
		return opts, nil
	}

	loText, hiText, ok := strings.Cut(in.weights, ":")
	if !ok {
		return nil, errors.Errorf("weights %q: want MIN:MAX", in.weights)
	}
	lo, err := strconv.Atoi(loText)
	if err != nil {
		return nil, errors.Wrapf(err, "weights %q", in.weights)
	}
	hi, err := strconv.Atoi(hiText)
	if err != nil {
		return nil, errors.Wrapf(err, "weights %q", in.weights)
	}
	if lo > hi || (lo == 0 && hi == 0) {
		return nil, errors.Errorf("weights %q: empty range", in.weights)
	}

	return append(opts, builder.WithUniformWeight(lo, hi)), nil
}

// constructorFor maps a kind and its sizes to the matrix size and constructor.
func constructorFor(kind string, sizes []int, p float64) (int, builder.Constructor, error) {
	want := 1
	if kind == "grid" || kind == "bipartite" {
		want = 2
	}
	if len(sizes) != want {
		return 0, nil, errors.Errorf("%s takes %d size(s), got %d", kind, want, len(sizes))
	}

	n := sizes[0]
	switch kind {
	case "path":
		return n, builder.Path(n), nil
	case "cycle":
		return n, builder.Cycle(n), nil
	case "complete":
		return n, builder.Complete(n), nil
	case "star":
		return n, builder.Star(n), nil
	case "wheel":
		return n, builder.Wheel(n), nil
	case "random":
		return n, builder.RandomSparse(n, p), nil
	case "grid":
		return n * sizes[1], builder.Grid(n, sizes[1]), nil
	case "bipartite":
		return n + sizes[1], builder.CompleteBipartite(n, sizes[1]), nil
	}

	return 0, nil, errors.Errorf("unknown graph kind %q", kind)
}
