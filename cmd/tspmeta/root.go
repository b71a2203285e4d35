// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspmeta/internal/config"
	"github.com/katalvlaran/tspmeta/internal/telemetry"
	"github.com/katalvlaran/tspmeta/matrix"
	"github.com/katalvlaran/tspmeta/tsp"
)

// boundSymTol matches the symmetry tolerance the solvers apply.
const boundSymTol = 1e-12

// solveFlags are the command-line overrides shared by ga and aco. They win
// over the config file and the environment when set explicitly.
type solveFlags struct {
	configPath  string
	instance    string
	random      int
	seed        int64
	start       int
	localSearch bool
	metrics     bool
	logLevel    string
	rounds      int
	workers     int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "tspmeta",
		Short:        "Metaheuristic TSP solver (genetic algorithm, ant colony)",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newSolveCmd(tsp.Genetic, stdout, stderr),
		newSolveCmd(tsp.AntColony, stdout, stderr),
		newGenCmd(stdout),
	)

	return root
}

func newSolveCmd(algo tsp.Algo, stdout, stderr io.Writer) *cobra.Command {
	var (
		f     solveFlags
		use   = "ga"
		short = "Run the genetic algorithm"
		round = "generations"
	)
	if algo == tsp.AntColony {
		use, short, round = "aco", "Run ant colony optimization", "iterations"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd, algo, f)
			if err != nil {
				return err
			}

			return runSolve(cmd, cfg, f.metrics, stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML run configuration")
	fl.StringVar(&f.instance, "instance", "", "YAML instance file")
	fl.IntVar(&f.random, "random", 0, "solve a random symmetric instance with this many cities")
	fl.Int64Var(&f.seed, "seed", tsp.DefaultSeed, "random seed")
	fl.IntVar(&f.start, "start", 0, "origin city of the reported tour")
	fl.BoolVar(&f.localSearch, "local-search", false, "polish the result with 2-opt")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics of the run to stdout")
	fl.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fl.IntVar(&f.rounds, round, 0, "number of "+round+" (0 keeps the configured value)")
	if algo == tsp.AntColony {
		fl.IntVar(&f.workers, "workers", 0, "parallel ants (0 = GOMAXPROCS)")
	}

	return cmd
}

// loadRunConfig merges config file, environment and explicitly set flags.
func loadRunConfig(cmd *cobra.Command, algo tsp.Algo, f solveFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	cfg.Algo = "ga"
	if algo == tsp.AntColony {
		cfg.Algo = "aco"
	}

	fl := cmd.Flags()
	if fl.Changed("instance") {
		cfg.Instance.Path = f.instance
	}
	if fl.Changed("random") {
		cfg.Instance.Random = f.random
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("start") {
		cfg.StartVertex = f.start
	}
	if fl.Changed("local-search") {
		cfg.LocalSearch.Enabled = f.localSearch
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("generations") {
		cfg.Genetic.Generations = f.rounds
	}
	if fl.Changed("iterations") {
		cfg.Colony.Iterations = f.rounds
	}
	if fl.Changed("workers") {
		cfg.Colony.Workers = f.workers
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, cfg config.Config, metrics bool, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", runID))

	inst, err := config.ResolveInstance(cfg.Instance, cfg.Seed)
	if err != nil {
		return err
	}
	dist, err := inst.Matrix()
	if err != nil {
		return fmt.Errorf("instance %s: %w", inst.Name, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	progress := telemetry.NewProgress(logger, cfg.Log.Every)
	progress.Attach(&opts)
	var collector *telemetry.Collector
	if metrics {
		collector = telemetry.NewCollector(runID)
		collector.Attach(&opts)
	}

	logger.Info("solving",
		slog.String("algo", opts.Algo.String()),
		slog.String("instance", inst.Name),
		slog.Int("cities", dist.Rows()),
		slog.Int64("seed", opts.Seed),
	)

	started := time.Now()
	res, err := tsp.SolveWithMatrixContext(cmd.Context(), dist, opts)
	if err != nil {
		logger.Error("solve failed", slog.Any("error", err))
		if res.Tour != nil {
			// Interrupted colony run: still report the best tour found.
			if perr := printResult(stdout, inst, res); perr != nil {
				return perr
			}
		}
		return err
	}
	elapsed := time.Since(started)
	progress.Result(opts.Algo, res, elapsed)

	// The 1-tree bound only holds for symmetric instances.
	if serr := matrix.ValidateSymmetric(dist, boundSymTol); serr == nil {
		bopts := tsp.DefaultBoundOptions()
		bopts.UpperBound = res.Cost
		lb, berr := tsp.OneTreeBound(dist, opts.StartVertex, bopts)
		if berr != nil {
			return berr
		}
		progress.Bound(lb, res.Cost)
	} else {
		logger.Debug("lower bound skipped", slog.Any("reason", serr))
	}

	if err = printResult(stdout, inst, res); err != nil {
		return err
	}
	if collector != nil {
		collector.Result(opts.Algo, res, elapsed)
		return collector.WriteText(stdout)
	}

	return nil
}

func printResult(w io.Writer, inst config.Instance, res tsp.TSResult) error {
	route := make([]string, len(res.Tour))
	for i, c := range res.Tour {
		route[i] = inst.Label(c)
	}
	_, err := fmt.Fprintf(w, "tour: %v\ndistance: %g\n", route, res.Cost)

	return err
}
