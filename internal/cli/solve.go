// SPDX-License-Identifier: MIT
// Package: mwis/internal/cli
//
// solve.go - "mwis solve": one engine, one instance, one YAML report.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mwis/config"
	"github.com/katalvlaran/mwis/graph"
	"github.com/katalvlaran/mwis/instance"
	"github.com/katalvlaran/mwis/metrics"
	"github.com/katalvlaran/mwis/solver"
)

// engineFlags are the solver settings shared by solve and bench. Explicit
// flags override the configuration file, which overrides config.Default().
type engineFlags struct {
	config    string
	algo      string
	epsilon   float64
	maxRounds int
	workers   int
	seed      int64
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML solver configuration file")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", solver.DefaultEpsilon, "relaxation parameter in (0,1)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "goroutines evaluating each round (0 or 1: sequential)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "annealing seed")
}

// resolve merges the configuration file and the explicitly set flags.
func (f *engineFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("algo") {
		cfg.Algorithm = strings.ToLower(f.algo)
	}
	if flags.Changed("epsilon") {
		cfg.Relaxed.Epsilon = f.epsilon
	}
	if flags.Changed("max-rounds") {
		cfg.Local.MaxRounds = f.maxRounds
		cfg.Relaxed.MaxRounds = f.maxRounds
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("seed") {
		cfg.Anneal.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

type solveOpts struct {
	engineFlags
	metrics string
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "Run one engine on an instance and print a YAML report",
		Long: `Run one engine on an instance file and print a YAML report.

Instance files are YAML (name, weights, edges); a ".zst" suffix selects
zstd compression.

Examples:
  mwis solve cycle.yaml
  mwis solve --algo relaxed --epsilon 0.25 grid.yaml.zst
  mwis solve --config solver.toml --metrics - random.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg, opts.metrics)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.algo, "algo", "a", solver.Local.String(), "engine: local, relaxed, anneal or greedy")
	cmd.Flags().IntVar(&opts.maxRounds, "max-rounds", 0, "stop local and relaxed engines after this many rounds (0: no limit)")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", `write Prometheus text metrics to this file ("-": stderr)`)

	return cmd
}

// solveReport is the YAML document printed by solve.
type solveReport struct {
	RunID      string        `yaml:"run_id"`
	Instance   string        `yaml:"instance,omitempty"`
	Algorithm  string        `yaml:"algorithm"`
	Vertices   int           `yaml:"vertices"`
	Edges      int           `yaml:"edges"`
	Set        []int         `yaml:"set,flow"`
	Size       int           `yaml:"size"`
	Weight     float64       `yaml:"weight"`
	Converged  bool          `yaml:"converged"`
	Rounds     int           `yaml:"rounds"`
	Messages   int64         `yaml:"messages"`
	Broadcasts int64         `yaml:"broadcasts"`
	Updates    int64         `yaml:"updates,omitempty"`
	Remaining  []int         `yaml:"remaining,flow,omitempty"`
	Params     *paramsReport `yaml:"params,omitempty"`
	Elapsed    string        `yaml:"elapsed"`
}

type paramsReport struct {
	Epsilon float64 `yaml:"epsilon,omitempty"`
	Alpha   float64 `yaml:"alpha,omitempty"`
	Beta    float64 `yaml:"beta,omitempty"`
	Penalty float64 `yaml:"penalty,omitempty"`
	Reward  float64 `yaml:"reward,omitempty"`
}

func runSolve(ctx context.Context, out, errOut io.Writer, path string, cfg config.Config, metricsPath string) error {
	logger := loggerFromContext(ctx)
	algo, err := solver.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	g, in, err := instance.LoadGraph(path)
	if err != nil {
		return err
	}
	name := in.Name
	if name == "" {
		name = filepath.Base(path)
	}

	runID := uuid.NewString()
	runLog := logger.With("run", runID, "algo", algo)
	runLog.Debug("Loaded instance", "name", name, "vertices", g.Order(), "edges", g.Size())

	opts := append(cfg.OptionsFor(algo), solver.WithContext(ctx), solver.WithLogger(runLog))

	rec := metrics.NewRecorder()
	prog := newProgress(runLog)
	res, err := solver.Solve(g, opts...)
	if err != nil {
		rec.ObserveError(algo)
		return fmt.Errorf("solve %s: %w", name, err)
	}
	elapsed := prog.elapsed()
	rec.Observe(res, elapsed)
	prog.done("Solved "+name, "weight", res.Weight, "size", res.Len(), "rounds", res.Stats.Rounds)

	report := newSolveReport(runID, name, g, res)
	report.Elapsed = elapsed.String()
	if err = writeYAML(out, report); err != nil {
		return err
	}
	if metricsPath != "" {
		return writeMetrics(rec, metricsPath, errOut)
	}
	return nil
}

func newSolveReport(runID, name string, g *graph.Graph, res solver.Result) solveReport {
	r := solveReport{
		RunID:      runID,
		Instance:   name,
		Algorithm:  res.Algorithm.String(),
		Vertices:   g.Order(),
		Edges:      g.Size(),
		Set:        res.Members(),
		Size:       res.Len(),
		Weight:     res.Weight,
		Converged:  res.Converged,
		Rounds:     res.Stats.Rounds,
		Messages:   res.Stats.Messages,
		Broadcasts: res.Stats.Broadcasts,
		Updates:    res.Stats.Updates,
	}
	if res.Remaining != nil && !res.Remaining.IsEmpty() {
		r.Remaining = members(res.Remaining)
	}
	if p := res.Params; p != (solver.Params{}) {
		r.Params = &paramsReport{
			Epsilon: p.Epsilon,
			Alpha:   p.Alpha,
			Beta:    p.Beta,
			Penalty: p.Penalty,
			Reward:  p.Reward,
		}
	}
	return r
}

// members lists the ids in b in ascending order.
func members(b *roaring.Bitmap) []int {
	ids := b.ToArray()
	out := make([]int, len(ids))
	for i, v := range ids {
		out[i] = int(v)
	}
	return out
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// writeMetrics writes the recorder's exposition to path, or to errOut for "-".
func writeMetrics(rec *metrics.Recorder, path string, errOut io.Writer) (err error) {
	if path == "-" {
		return rec.WriteText(errOut)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return rec.WriteText(f)
}
