package cmd

import (
	"bytes"
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rmatrix/bfs"
	"github.com/katalvlaran/rmatrix/config"
	"github.com/katalvlaran/rmatrix/loader"
	"github.com/katalvlaran/rmatrix/logging"
	"github.com/katalvlaran/rmatrix/render"
	"github.com/katalvlaran/rmatrix/routing"
)

// Execute is the entry point to running the CLI. The returned error has
// already been logged.
func Execute(ctx context.Context, version string) error {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		return err
	}

	return nil
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rmatrix",
		Short:         "Compute the first-hop routing matrix of a weighted network",
		Args:          cobra.NoArgs,
		RunE:          newRunCommand(ctx, input),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&input.input, "input", "i", config.DefaultInput, "edge list (.txt) or topology (.yaml) to read")
	rootCmd.Flags().StringVarP(&input.output, "output", "o", config.DefaultOutput, "file to write the routing matrix to")
	rootCmd.Flags().StringVarP(&input.format, "format", "f", config.DefaultFormat, "output format: text or yaml")
	rootCmd.Flags().IntVarP(&input.workers, "workers", "w", config.DefaultWorkers, "sources computed concurrently")
	rootCmd.Flags().StringVar(&input.engine, "engine", config.DefaultEngine, "frontier strategy: scan or heap")
	rootCmd.Flags().IntVar(&input.columnWidth, "width", render.MinColumnWidth, "minimum column width of the text matrix")
	rootCmd.Flags().BoolVar(&input.verify, "verify", false, "cross-check the matrix against all-pairs distances")
	rootCmd.Flags().BoolVarP(&input.quiet, "quiet", "q", false, "do not print the matrix to stdout")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFile, "log-file", "", "also write logs to this rotated file")
	rootCmd.SetVersionTemplate("rmatrix version {{.Version}}\n")

	rootCmd.AddCommand(newGenerateCommand(input))

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := input.resolve(cmd.Flags())
		if err != nil {
			return err
		}
		closer, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log, input.verbose)
		if err != nil {
			return errors.Wrap(config.ErrInvalidConfig, err.Error())
		}
		defer closer.Close()

		g, err := loader.Load(cfg.Input)
		if err != nil {
			return err
		}
		log.Infof("loaded %s: %d nodes, %d edges", cfg.Input, g.NodeCount(), g.EdgeCount())
		comps, err := bfs.Components(ctx, g)
		if err != nil {
			return err
		}
		for _, c := range comps {
			log.Debugf("component %s: %d nodes, %d hops across", c.Root, len(c.Nodes), c.Hops)
		}
		if len(comps) > 1 {
			log.Warnf("network has %d components, %d routes will be unreachable", len(comps), bfs.UnreachablePairs(comps))
		}

		if err = ctx.Err(); err != nil {
			return err
		}
		table, err := routing.Build(g, routing.WithWorkers(cfg.Workers), routing.WithStrategy(cfg.Strategy()))
		if err != nil {
			return errors.Wrap(err, "failed to build routing table")
		}
		if cfg.Verify {
			if err = routing.Verify(g, table); err != nil {
				return err
			}
			log.Infof("verified %dx%d matrix", table.Len(), table.Len())
		}

		var buf bytes.Buffer
		if err = render.Write(&buf, table, cfg.OutputFormat(), render.WithMinWidth(cfg.ColumnWidth)); err != nil {
			return err
		}
		if !cfg.Quiet {
			if _, err = cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
				return errors.Wrap(err, "failed to print routing table")
			}
		}
		if err = os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", cfg.Output)
		}
		log.Infof("wrote %s", cfg.Output)

		return nil
	}
}
