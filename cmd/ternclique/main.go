// SPDX-License-Identifier: MIT

// Command ternclique compresses a file of ternary vectors into a dictionary
// of wildcard templates using a greedy clique cover.
//
//	ternclique <input_file> <max_entries> <vector_length> <output_file>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ternclique/config"
	"github.com/katalvlaran/ternclique/logging"
	"github.com/katalvlaran/ternclique/pipeline"
)

// app carries flag values and the logger shared by all subcommands.
type app struct {
	configPath  string
	verbose     bool
	strategy    string
	format      string
	onMalformed string
	workers     int
	metricsFile string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ternclique <input_file> <max_entries> <vector_length> <output_file>",
		Short: "Compress ternary vectors into a dictionary of wildcard templates",
		Long: `ternclique reads whitespace-separated vectors over {0,1,X}, builds their
pairwise compatibility graph, and greedily extracts up to max_entries disjoint
cliques. Each clique is merged into one template and written as

  Clique <i>: <template>

Inputs and outputs ending in .gz, .zst or .lz4 are (de)compressed on the fly.

Flags must come before the positional arguments; everything from the first
positional argument on is taken literally, so a negative max_entries is
reported as a configuration error rather than parsed as a flag.`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runCompress,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (missing file means defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.workers, "workers", 1, "goroutines for graph construction and clique search")

	f := root.Flags()
	f.SetInterspersed(false)
	f.StringVar(&a.strategy, "strategy", "greedy", "clique heuristic: greedy or max-degree")
	f.StringVar(&a.format, "format", "templates", "output layout: templates or members")
	f.StringVar(&a.onMalformed, "on-malformed", "fail", "malformed input records: fail or skip")
	f.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")

	root.AddCommand(newGraphCmd(a))

	return root
}

// setup loads the config, applies explicitly set flags over it, and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("on-malformed") {
		cfg.OnMalformed = a.onMalformed
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	if err = cfg.ValidateLogging(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.logger, _ = logging.WithRun(logger)
	a.cfg = cfg

	return nil
}

// parseSizes converts the numeric positional arguments. Both are
// configuration errors and are reported before any file is touched.
func parseSizes(maxArg, lengthArg string) (maxEntries, length int, err error) {
	maxEntries, err = strconv.Atoi(maxArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: max_entries %q", config.ErrNegativeCap, maxArg)
	}
	length, err = strconv.Atoi(lengthArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not an integer", config.ErrInvalidLength, lengthArg)
	}

	return maxEntries, length, nil
}

func (a *app) runCompress(cmd *cobra.Command, args []string) error {
	maxEntries, length, err := parseSizes(args[1], args[2])
	if err != nil {
		return err
	}
	a.cfg.Input = args[0]
	a.cfg.MaxEntries = maxEntries
	a.cfg.VectorLength = length
	a.cfg.Output = args[3]

	rep, err := pipeline.Run(cmd.Context(), a.cfg, a.logger)
	if err != nil {
		return err
	}
	if rep.Shortfall {
		fmt.Fprintf(cmd.OutOrStdout(), "Only %d dictionary entries are possible\n", rep.Found)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
