// SPDX-License-Identifier: MIT
// Package: mwis/internal/cli
//
// bench.go - "mwis bench": every engine on one instance, side by side.

package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mwis/config"
	"github.com/katalvlaran/mwis/graph"
	"github.com/katalvlaran/mwis/instance"
	"github.com/katalvlaran/mwis/solver"
)

// DefaultTrials is the number of annealing runs per bench.
const DefaultTrials = 8

type benchOpts struct {
	engineFlags
	trials int
}

func newBenchCmd() *cobra.Command {
	opts := benchOpts{trials: DefaultTrials}

	cmd := &cobra.Command{
		Use:   "bench <instance>",
		Short: "Compare every engine on an instance",
		Long: `Run every engine on an instance file and print one table row per engine.

Deterministic engines run once. The annealer runs --trials times with seeds
derived from --seed; its row reports the mean and standard deviation of the
set weight over the trials.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.trials < 1 {
				return fmt.Errorf("bench: --trials must be ≥ 1, got %d", opts.trials)
			}
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, opts.trials)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.trials, "trials", "t", opts.trials, "annealing runs")

	return cmd
}

// benchRow summarizes the runs of one engine.
type benchRow struct {
	algo      solver.Algorithm
	runs      int
	mean      float64
	stddev    float64
	best      float64
	size      int
	rounds    float64
	messages  float64
	converged int
}

func runBench(ctx context.Context, out io.Writer, path string, cfg config.Config, trials int) error {
	logger := loggerFromContext(ctx)
	g, in, err := instance.LoadGraph(path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded instance", "name", in.Name, "vertices", g.Order(), "edges", g.Size())

	prog := newProgress(logger)
	rows := make([]benchRow, 0, len(solver.Algorithms()))
	for _, algo := range solver.Algorithms() {
		runs := 1
		if algo == solver.Annealing {
			runs = trials
		}
		results, err := benchEngine(ctx, g, cfg, algo, runs)
		if err != nil {
			return fmt.Errorf("bench %s: %w", algo, err)
		}
		rows = append(rows, summarize(algo, results))
	}
	prog.done(fmt.Sprintf("Benchmarked %d engines", len(rows)), "trials", trials)

	return writeBenchTable(out, rows)
}

// benchEngine runs algo runs times. Annealing run i uses the seed derived
// from the configured seed and i; runs execute concurrently.
func benchEngine(ctx context.Context, g *graph.Graph, cfg config.Config, algo solver.Algorithm, runs int) ([]solver.Result, error) {
	logger := loggerFromContext(ctx)
	results := make([]solver.Result, runs)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < runs; i++ {
		opts := append(cfg.OptionsFor(algo),
			solver.WithContext(ctx),
			solver.WithLogger(logger.With("algo", algo, "trial", i)))
		if algo == solver.Annealing {
			opts = append(opts, solver.WithSeed(solver.DeriveSeed(cfg.Anneal.Seed, uint64(i))))
		}
		eg.Go(func() error {
			res, err := solver.Solve(g, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarize(algo solver.Algorithm, results []solver.Result) benchRow {
	n := len(results)
	weights := make([]float64, n)
	rounds := make([]float64, n)
	messages := make([]float64, n)
	row := benchRow{algo: algo, runs: n}
	for i, res := range results {
		weights[i] = res.Weight
		rounds[i] = float64(res.Stats.Rounds)
		messages[i] = float64(res.Stats.Messages)
		if res.Converged {
			row.converged++
		}
	}

	row.mean, row.stddev = stat.MeanStdDev(weights, nil)
	if n == 1 {
		row.stddev = 0
	}
	best := floats.MaxIdx(weights)
	row.best, row.size = weights[best], results[best].Len()
	row.rounds = stat.Mean(rounds, nil)
	row.messages = stat.Mean(messages, nil)
	return row
}

func writeBenchTable(out io.Writer, rows []benchRow) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ALGORITHM\tRUNS\tWEIGHT\tSTDDEV\tBEST\tSIZE\tROUNDS\tMESSAGES\tCONVERGED\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%d\t%.1f\t%.0f\t%d/%d\t\n",
			r.algo, r.runs, r.mean, r.stddev, r.best, r.size, r.rounds, r.messages, r.converged, r.runs)
	}
	return tw.Flush()
}
