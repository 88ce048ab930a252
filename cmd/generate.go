package cmd

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rmatrix/builder"
	"github.com/katalvlaran/rmatrix/config"
	"github.com/katalvlaran/rmatrix/loader"
	"github.com/katalvlaran/rmatrix/logging"
)

// maxLetterIDs is the node count SymbolIDFn can name.
const maxLetterIDs = 26

type generateInput struct {
	kind      string
	n         int
	rows      int
	cols      int
	p         float64
	seed      int64
	minWeight int64
	maxWeight int64
	ids       string
	output    string
}

var kinds = []string{"path", "cycle", "star", "grid", "complete", "random", "isolated"}

func newGenerateCommand(root *Input) *cobra.Command {
	in := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated network topology as an edge list",
		Long: "Generate a deterministic topology (" + strings.Join(kinds, ", ") + ") for use as rmatrix input.\n" +
			"Weights are drawn uniformly from [min-weight, max-weight] with the given seed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Setup(cmd.ErrOrStderr(), config.LogConfig{Level: config.DefaultLevel, File: root.logFile}, root.verbose)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctor, opts, err := in.plan()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(opts, ctor)
			if err != nil {
				return errors.Wrapf(err, "failed to generate %s topology", in.kind)
			}
			log.Debugf("generated %s: %d nodes, %d edges", in.kind, g.NodeCount(), g.EdgeCount())

			if in.output == "" || in.output == "-" {
				return loader.Write(cmd.OutOrStdout(), g)
			}
			if err = loader.Save(in.output, g); err != nil {
				return err
			}
			log.Infof("wrote %s: %d nodes, %d edges", in.output, g.NodeCount(), g.EdgeCount())

			return nil
		},
	}
	cmd.Flags().StringVar(&in.kind, "kind", "grid", "topology: "+strings.Join(kinds, "|"))
	cmd.Flags().IntVarP(&in.n, "nodes", "n", 8, "node count (path, cycle, star, complete, random, isolated)")
	cmd.Flags().IntVar(&in.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&in.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&in.p, "p", 0.3, "edge probability (random)")
	cmd.Flags().Int64Var(&in.seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&in.minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&in.maxWeight, "max-weight", 9, "largest edge weight")
	cmd.Flags().StringVar(&in.ids, "ids", "decimal", "node names: decimal, letter or excel")
	cmd.Flags().StringVarP(&in.output, "output", "o", "", "file to write (.txt edge list or .yaml); stdout if empty")

	return cmd
}

// plan validates the flags and turns them into a constructor and options.
// Everything that would make a builder option panic is rejected here.
func (in *generateInput) plan() (builder.Constructor, []builder.BuilderOption, error) {
	if in.minWeight < 0 || in.maxWeight < in.minWeight {
		return nil, nil, errors.Wrapf(config.ErrInvalidConfig,
			"weight range [%d, %d]: want 0 <= min <= max", in.minWeight, in.maxWeight)
	}
	idFn, ok := builder.ParseIDScheme(in.ids)
	if !ok {
		return nil, nil, errors.Wrapf(config.ErrInvalidConfig, "ids %q: want decimal, letter or excel", in.ids)
	}
	if in.ids == "letter" && in.kind != "grid" && in.n > maxLetterIDs {
		return nil, nil, errors.Wrapf(config.ErrInvalidConfig, "ids letter names at most %d nodes, got %d", maxLetterIDs, in.n)
	}

	var ctor builder.Constructor
	switch in.kind {
	case "path":
		ctor = builder.Path(in.n)
	case "cycle":
		ctor = builder.Cycle(in.n)
	case "star":
		ctor = builder.Star(in.n)
	case "grid":
		ctor = builder.Grid(in.rows, in.cols)
	case "complete":
		ctor = builder.Complete(in.n)
	case "random":
		ctor = builder.RandomSparse(in.n, in.p)
	case "isolated":
		ctor = builder.Isolated(in.n)
	default:
		return nil, nil, errors.Wrapf(config.ErrInvalidConfig, "kind %q: want one of %s", in.kind, strings.Join(kinds, ", "))
	}
	weights := builder.WithWeightRange(in.minWeight, in.maxWeight)
	if in.minWeight == in.maxWeight {
		weights = builder.WithWeightFn(builder.ConstantWeightFn(in.minWeight))
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(in.seed),
		builder.WithIDScheme(idFn),
		weights,
	}

	return ctor, opts, nil
}
