// SPDX-License-Identifier: MIT
// Package config loads tspmeta run configuration.
//
// Sources are applied in a fixed order, each overriding the previous one:
//  1. Default() values (the reference runs);
//  2. an optional YAML file;
//  3. TSPMETA_* environment variables;
//
// and the merged result is validated with struct tags before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspmeta/tsp"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TSPMETA_"

// ErrInvalidConfig is returned when the merged configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the complete run configuration.
type Config struct {
	// Algo is "ga" or "aco" (long forms accepted, see tsp.ParseAlgo).
	Algo string `yaml:"algo" validate:"required,oneof=ga genetic aco antcolony ant-colony"`

	// Seed drives every random draw of the run.
	Seed int64 `yaml:"seed"`

	// StartVertex is the fixed origin of the reported tour.
	StartVertex int `yaml:"start_vertex" validate:"gte=0"`

	Genetic     GeneticConfig     `yaml:"genetic"`
	Colony      ColonyConfig      `yaml:"colony"`
	LocalSearch LocalSearchConfig `yaml:"local_search"`
	Instance    InstanceConfig    `yaml:"instance"`
	Log         LogConfig         `yaml:"log"`
}

// GeneticConfig mirrors tsp.GeneticOptions.
type GeneticConfig struct {
	PopSize        int     `yaml:"pop_size" validate:"gte=1"`
	Generations    int     `yaml:"generations" validate:"gte=0"`
	MutationRate   float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	ElitismSize    int     `yaml:"elitism_size" validate:"gte=0,ltefield=PopSize"`
	TournamentSize int     `yaml:"tournament_size" validate:"gte=1,ltefield=PopSize"`
}

// ColonyConfig mirrors tsp.ColonyOptions.
type ColonyConfig struct {
	Iterations int     `yaml:"iterations" validate:"gte=1"`
	Ants       int     `yaml:"ants" validate:"gte=1"`
	Alpha      float64 `yaml:"alpha" validate:"gte=0"`
	Beta       float64 `yaml:"beta" validate:"gte=0"`
	Decay      float64 `yaml:"decay" validate:"gte=0"`
	Q          float64 `yaml:"q" validate:"gt=0"`
	Workers    int     `yaml:"workers"`
}

// LocalSearchConfig controls the optional 2-opt polish.
type LocalSearchConfig struct {
	Enabled  bool    `yaml:"enabled"`
	MaxIters int     `yaml:"max_iters" validate:"gte=0"`
	Eps      float64 `yaml:"eps" validate:"gte=0"`
}

// InstanceConfig selects the distance matrix. Path wins over Random; with
// neither set the built-in 5-city instance is used.
type InstanceConfig struct {
	Path   string  `yaml:"path"`
	Random int     `yaml:"random" validate:"gte=0"`
	Min    float64 `yaml:"min" validate:"gte=0"`
	Max    float64 `yaml:"max" validate:"gtefield=Min"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Every is the progress interval in generations/iterations.
	Every int `yaml:"every" validate:"gte=1"`
}

// Default returns the reference configuration: GA, seed 42, the 5-city
// instance and progress every 10 rounds.
func Default() Config {
	return Config{
		Algo:        "ga",
		Seed:        tsp.DefaultSeed,
		StartVertex: 0,
		Genetic: GeneticConfig{
			PopSize:        tsp.DefaultPopSize,
			Generations:    tsp.DefaultGenerations,
			MutationRate:   tsp.DefaultMutationRate,
			ElitismSize:    tsp.DefaultElitismSize,
			TournamentSize: tsp.DefaultTournamentSize,
		},
		Colony: ColonyConfig{
			Iterations: tsp.DefaultIterations,
			Ants:       tsp.DefaultAnts,
			Alpha:      tsp.DefaultAlpha,
			Beta:       tsp.DefaultBeta,
			Decay:      tsp.DefaultDecay,
			Q:          tsp.DefaultQ,
		},
		LocalSearch: LocalSearchConfig{Eps: tsp.DefaultEps},
		Instance:    InstanceConfig{Min: 1, Max: 20},
		Log:         LogConfig{Level: "info", Every: 10},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// Validate checks struct tags and wraps failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the configuration into solver options. Hooks are left
// for the caller to attach.
func (c Config) Options() (tsp.Options, error) {
	algo, err := tsp.ParseAlgo(c.Algo)
	if err != nil {
		return tsp.Options{}, err
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.Seed = c.Seed
	opts.StartVertex = c.StartVertex
	opts.EnableLocalSearch = c.LocalSearch.Enabled
	opts.TwoOptMaxIters = c.LocalSearch.MaxIters
	opts.Eps = c.LocalSearch.Eps
	opts.Genetic = tsp.GeneticOptions{
		PopSize:        c.Genetic.PopSize,
		Generations:    c.Genetic.Generations,
		MutationRate:   c.Genetic.MutationRate,
		ElitismSize:    c.Genetic.ElitismSize,
		TournamentSize: c.Genetic.TournamentSize,
	}
	opts.Colony = tsp.ColonyOptions{
		Iterations: c.Colony.Iterations,
		Ants:       c.Colony.Ants,
		Alpha:      c.Colony.Alpha,
		Beta:       c.Colony.Beta,
		Decay:      c.Colony.Decay,
		Q:          c.Colony.Q,
		Workers:    c.Colony.Workers,
	}

	return opts, nil
}

// envBinding ties one TSPMETA_* variable to a config field.
type envBinding struct {
	key string
	set func(cfg *Config, v string) error
}

func envString(dst func(*Config) *string) func(*Config, string) error {
	return func(cfg *Config, v string) error {
		*dst(cfg) = strings.TrimSpace(v)
		return nil
	}
}

func envInt(dst func(*Config) *int) func(*Config, string) error {
	return func(cfg *Config, v string) error {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*dst(cfg) = i
		return nil
	}
}

func envFloat(dst func(*Config) *float64) func(*Config, string) error {
	return func(cfg *Config, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*dst(cfg) = f
		return nil
	}
}

var envBindings = []envBinding{
	{"ALGO", envString(func(c *Config) *string { return &c.Algo })},
	{"SEED", func(c *Config, v string) error {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.Seed = s
		return nil
	}},
	{"START_VERTEX", envInt(func(c *Config) *int { return &c.StartVertex })},

	{"POP_SIZE", envInt(func(c *Config) *int { return &c.Genetic.PopSize })},
	{"GENERATIONS", envInt(func(c *Config) *int { return &c.Genetic.Generations })},
	{"MUTATION_RATE", envFloat(func(c *Config) *float64 { return &c.Genetic.MutationRate })},
	{"ELITISM_SIZE", envInt(func(c *Config) *int { return &c.Genetic.ElitismSize })},
	{"TOURNAMENT_SIZE", envInt(func(c *Config) *int { return &c.Genetic.TournamentSize })},

	{"ITERATIONS", envInt(func(c *Config) *int { return &c.Colony.Iterations })},
	{"ANTS", envInt(func(c *Config) *int { return &c.Colony.Ants })},
	{"ALPHA", envFloat(func(c *Config) *float64 { return &c.Colony.Alpha })},
	{"BETA", envFloat(func(c *Config) *float64 { return &c.Colony.Beta })},
	{"DECAY", envFloat(func(c *Config) *float64 { return &c.Colony.Decay })},
	{"Q", envFloat(func(c *Config) *float64 { return &c.Colony.Q })},
	{"WORKERS", envInt(func(c *Config) *int { return &c.Colony.Workers })},

	{"LOCAL_SEARCH", func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		c.LocalSearch.Enabled = b
		return nil
	}},

	{"INSTANCE", envString(func(c *Config) *string { return &c.Instance.Path })},
	{"LOG_LEVEL", envString(func(c *Config) *string { return &c.Log.Level })},
}

// loadEnv applies every set TSPMETA_* variable. A malformed value is an
// error rather than silently ignored.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok || v == "" {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, b.key, v, err)
		}
	}

	return nil
}
