// SPDX-License-Identifier: MIT
// Package: mwis/internal/cli
//
// gen.go - "mwis gen": write a generated instance file.

package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mwis/builder"
	"github.com/katalvlaran/mwis/instance"
)

// Weight distributions accepted by --weights.
const (
	weightsConstant    = "constant"
	weightsUniform     = "uniform"
	weightsExponential = "exponential"
	weightsGeometric   = "geometric"
)

// genKinds lists the supported topologies in help order.
var genKinds = []string{"isolated", "path", "cycle", "star", "wheel", "complete", "bipartite", "grid", "random", "regular"}

type genOpts struct {
	n, m       int
	p          float64
	degree     int
	rows, cols int
	seed       int64
	weights    string
	minWeight  float64
	maxWeight  float64
	rate       float64
	ratio      float64
	name       string
	output     string
}

func newGenCmd() *cobra.Command {
	opts := genOpts{
		n:         10,
		p:         0.1,
		degree:    3,
		rows:      4,
		cols:      4,
		seed:      1,
		weights:   weightsUniform,
		minWeight: 1,
		maxWeight: 10,
		rate:      1,
		ratio:     1.1,
	}

	cmd := &cobra.Command{
		Use:   "gen <kind>",
		Short: "Write a generated instance file",
		Long: fmt.Sprintf(`Generate a weighted graph and write it as an instance file.

Kinds: %s.

Examples:
  mwis gen path -n 20 --weights geometric -o path20.yaml
  mwis gen grid --rows 8 --cols 8 -o grid.yaml.zst
  mwis gen random -n 1000 -p 0.01 --seed 7 -o random.yaml`, strings.Join(genKinds, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: genKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := opts.constructor(args[0])
			if err != nil {
				return err
			}
			bopts, err := opts.builderOptions()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(bopts, cons)
			if err != nil {
				return err
			}

			name := opts.name
			if name == "" {
				name = args[0]
			}
			if err = instance.Save(opts.output, instance.FromGraph(name, g)); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Wrote instance", "path", opts.output, "vertices", g.Order(), "edges", g.Size())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.n, "vertices", "n", opts.n, "vertex count (bipartite: left side)")
	f.IntVarP(&opts.m, "right", "m", 0, "right side of a bipartite graph (0: same as -n)")
	f.Float64VarP(&opts.p, "probability", "p", opts.p, "edge probability for random graphs")
	f.IntVarP(&opts.degree, "degree", "d", opts.degree, "degree of regular graphs")
	f.IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	f.IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	f.Int64Var(&opts.seed, "seed", opts.seed, "random seed for topology and weights")
	f.StringVarP(&opts.weights, "weights", "w", opts.weights, "weight distribution: constant, uniform, exponential or geometric")
	f.Float64Var(&opts.minWeight, "min-weight", opts.minWeight, "uniform lower bound; constant and geometric base")
	f.Float64Var(&opts.maxWeight, "max-weight", opts.maxWeight, "uniform upper bound")
	f.Float64Var(&opts.rate, "rate", opts.rate, "exponential rate")
	f.Float64Var(&opts.ratio, "ratio", opts.ratio, "geometric ratio")
	f.StringVar(&opts.name, "name", "", "instance name (default: kind)")
	f.StringVarP(&opts.output, "output", "o", "", `output file; a ".zst" suffix compresses`)
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// constructor maps a kind to its builder constructor. Size checks are left
// to the constructor.
func (o *genOpts) constructor(kind string) (builder.Constructor, error) {
	switch strings.ToLower(kind) {
	case "isolated":
		return builder.Isolated(o.n), nil
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "bipartite":
		m := o.m
		if m == 0 {
			m = o.n
		}
		return builder.CompleteBipartite(o.n, m), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "random":
		return builder.RandomSparse(o.n, o.p), nil
	case "regular":
		return builder.RandomRegular(o.n, o.degree), nil
	default:
		return nil, fmt.Errorf("gen: unknown kind %q (want one of %s)", kind, strings.Join(genKinds, ", "))
	}
}

// builderOptions validates the weight flags up front; the weight function
// constructors panic on values they cannot use.
func (o *genOpts) builderOptions() ([]builder.BuilderOption, error) {
	finite := func(xs ...float64) bool {
		return !slices.ContainsFunc(xs, func(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) })
	}

	bopts := []builder.BuilderOption{builder.WithSeed(o.seed)}
	switch strings.ToLower(o.weights) {
	case weightsConstant:
		if !finite(o.minWeight) || o.minWeight < 0 {
			return nil, fmt.Errorf("gen: constant weight must be finite and ≥ 0, got %g", o.minWeight)
		}
		bopts = append(bopts, builder.WithConstantWeight(o.minWeight))
	case weightsUniform:
		if !finite(o.minWeight, o.maxWeight) || o.minWeight < 0 || o.maxWeight < o.minWeight {
			return nil, fmt.Errorf("gen: require 0 ≤ min-weight ≤ max-weight, got %g and %g", o.minWeight, o.maxWeight)
		}
		bopts = append(bopts, builder.WithUniformWeight(o.minWeight, o.maxWeight))
	case weightsExponential:
		if !finite(o.rate) || o.rate <= 0 {
			return nil, fmt.Errorf("gen: rate must be > 0, got %g", o.rate)
		}
		bopts = append(bopts, builder.WithExponentialWeight(o.rate))
	case weightsGeometric:
		if !finite(o.minWeight, o.ratio) || o.minWeight <= 0 || o.ratio <= 0 {
			return nil, fmt.Errorf("gen: geometric weights need min-weight > 0 and ratio > 0, got %g and %g", o.minWeight, o.ratio)
		}
		bopts = append(bopts, builder.WithWeightFn(builder.GeometricWeightFn(o.minWeight, o.ratio)))
	default:
		return nil, fmt.Errorf("gen: unknown weight distribution %q", o.weights)
	}
	return bopts, nil
}
