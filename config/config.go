// SPDX-License-Identifier: MIT
// Package: mwis/config
//
// config.go - TOML solver configuration.
//
// Example:
//
//	algorithm = "relaxed"
//	tie_break = "lower"
//	workers   = 4
//
//	[local]
//	max_rounds = 0
//	instrument = true
//
//	[relaxed]
//	epsilon    = 0.25
//	max_rounds = 0
//
//	[anneal]
//	seed         = 7
//	steps        = 128
//	min_exponent = -5.0
//	max_exponent = 5.0
//	penalty      = 0.0
//
// Unknown keys are an error. Omitted keys keep their Default() values.

// Package config loads solver settings from TOML files and turns them into
// solver options.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/mwis/solver"
)

// ErrInvalidConfig wraps every decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tie-break names accepted by the tie_break key.
const (
	TieBreakLower  = "lower"
	TieBreakHigher = "higher"
)

var validate = validator.New()

// Config is the root of a solver configuration file.
type Config struct {
	Algorithm string  `toml:"algorithm" validate:"oneof=local relaxed anneal greedy"`
	TieBreak  string  `toml:"tie_break" validate:"oneof=lower higher"`
	Workers   int     `toml:"workers" validate:"gte=0,lte=1024"`
	Local     Local   `toml:"local"`
	Relaxed   Relaxed `toml:"relaxed"`
	Anneal    Anneal  `toml:"anneal"`
}

// Local configures the local-greedy engine.
type Local struct {
	MaxRounds  int  `toml:"max_rounds" validate:"gte=0"`
	Instrument bool `toml:"instrument"`
}

// Relaxed configures the relaxed engine.
type Relaxed struct {
	Epsilon   float64 `toml:"epsilon" validate:"gt=0,lt=1"`
	MaxRounds int     `toml:"max_rounds" validate:"gte=0"`
}

// Anneal configures the annealer.
type Anneal struct {
	Seed        int64   `toml:"seed"`
	Steps       int     `toml:"steps" validate:"gte=1"`
	MinExponent float64 `toml:"min_exponent"`
	MaxExponent float64 `toml:"max_exponent" validate:"gtefield=MinExponent"`
	Penalty     float64 `toml:"penalty" validate:"gte=0"`
}

// Default mirrors solver.DefaultOptions.
func Default() Config {
	return Config{
		Algorithm: solver.Local.String(),
		TieBreak:  TieBreakLower,
		Relaxed:   Relaxed{Epsilon: solver.DefaultEpsilon},
		Anneal: Anneal{
			Steps:       solver.DefaultSteps,
			MinExponent: solver.DefaultMinExponent,
			MaxExponent: solver.DefaultMaxExponent,
		},
	}
}

// Decode reads TOML from r over Default() and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load decodes the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the configuration of the selected algorithm into solver
// options.
func (c Config) Options() ([]solver.Option, error) {
	algo, err := solver.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.OptionsFor(algo), nil
}

// OptionsFor converts the configuration into options for algo, ignoring the
// algorithm key. The result always selects algo.
func (c Config) OptionsFor(algo solver.Algorithm) []solver.Option {
	rule := solver.LowerID
	if c.TieBreak == TieBreakHigher {
		rule = solver.HigherID
	}
	opts := []solver.Option{
		solver.WithAlgorithm(algo),
		solver.WithTieBreak(rule),
		solver.WithWorkers(c.Workers),
	}

	switch algo {
	case solver.Local:
		opts = append(opts, solver.WithMaxRounds(c.Local.MaxRounds))
		if c.Local.Instrument {
			opts = append(opts, solver.WithInstrumentation())
		}
	case solver.Relaxed:
		opts = append(opts, solver.WithEpsilon(c.Relaxed.Epsilon), solver.WithMaxRounds(c.Relaxed.MaxRounds))
	case solver.Annealing:
		opts = append(opts,
			solver.WithSeed(c.Anneal.Seed),
			solver.WithSchedule(c.Anneal.Steps, c.Anneal.MinExponent, c.Anneal.MaxExponent),
			solver.WithPenalty(c.Anneal.Penalty))
	}
	return opts
}
