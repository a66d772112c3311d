package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/densegraph/algorithms"
	"github.com/katalvlaran/densegraph/core"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd, s := createRootCommand(ctx, input, version)
	if err := s.execute(rootCmd); err != nil {
		os.Exit(1)
	}
}

// session is the state shared by the subcommands of one invocation.
type session struct {
	ctx      context.Context
	input    *Input
	version  string
	doc      *Document
	graph    *core.Graph
	tracer   trace.TracerProvider
	shutdown func(context.Context) error
}

func createRootCommand(ctx context.Context, input *Input, version string) (*cobra.Command, *session) {
	s := &session{ctx: ctx, input: input, version: version}

	rootCmd := &cobra.Command{
		Use:               "densegraph",
		Short:             "Answer connectivity, path, cycle and bipartiteness queries on a dense weight matrix.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
	}
	bindPersistentFlags(rootCmd.PersistentFlags(), input)

	rootCmd.AddCommand(
		newInfoCommand(s),
		newConnectedCommand(s),
		newPathCommand(s),
		newCycleCommand(s),
		newBipartiteCommand(s),
		newNegCycleCommand(s),
		newOrderCommand(s),
		newWeighCommand(s),
		newAllCommand(s),
		newGenerateCommand(),
	)

	return rootCmd, s
}

func bindPersistentFlags(fs *pflag.FlagSet, input *Input) {
	fs.StringVarP(&input.graphFile, "file", "f", "-", "graph document (YAML or JSON), - for stdin")
	fs.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&input.trace, "trace", false, "print query spans to stderr")
}

// setup configures logging and tracing, then loads the graph document.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	if s.input.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if !needsGraph(cmd) {
		return nil
	}

	if s.input.trace {
		tp, shutdown, err := setupTracing(cmd.ErrOrStderr(), s.version)
		if err != nil {
			return err
		}
		s.tracer, s.shutdown = tp, shutdown
	}

	doc, err := loadDocument(s.input.GraphFile(), cmd.InOrStdin())
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}
	s.doc, s.graph = doc, g
	log.WithFields(log.Fields{
		"name":     doc.Name,
		"vertices": g.NumVertices(),
	}).Debug("Graph loaded")

	return nil
}

// needsGraph is false for generate and for cobra's own help and
// completion commands.
func needsGraph(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "generate", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

// execute runs cmd and flushes pending spans afterwards, also when setup or
// the command failed.
func (s *session) execute(cmd *cobra.Command) (err error) {
	defer func() {
		if terr := s.teardown(); err == nil {
			err = terr
		}
	}()

	return cmd.Execute()
}

func (s *session) teardown() error {
	if s.shutdown == nil {
		return nil
	}
	shutdown := s.shutdown
	s.shutdown = nil

	return errors.Wrap(shutdown(s.ctx), "flush traces")
}

// options returns the algorithm options for this invocation.
func (s *session) options() []algorithms.Option {
	opts := []algorithms.Option{
		algorithms.WithContext(s.ctx),
		algorithms.WithLogger(log.StandardLogger()),
	}
	if s.tracer != nil {
		opts = append(opts, algorithms.WithTracerProvider(s.tracer))
	}

	return opts
}
