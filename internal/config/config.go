// SPDX-License-Identifier: MIT
// Package: config
//
// config.go — defaults, loading and validation.

// Package config loads runtime configuration for the connectome CLI.
// Values come from .connectome.yaml, CONNECTOME_* environment variables and
// CLI flags bound into viper, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/connectome/metrics"
)

// Accepted enumerations.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	SpeciesHuman = "human"
	SpeciesNHP   = "nhp"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// LogConfig configures the process logger.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	File    string `mapstructure:"file"`
	MaxSize int    `mapstructure:"max_size"` // megabytes
	MaxAge  int    `mapstructure:"max_age"`  // days
}

// Config holds all runtime configuration.
type Config struct {
	Seed              int64     `mapstructure:"seed"`
	RandomTrials      int       `mapstructure:"random_trials"`
	Threshold         float64   `mapstructure:"threshold"`
	NullModel         string    `mapstructure:"null_model"`
	Delimiter         string    `mapstructure:"delimiter"`
	Format            string    `mapstructure:"format"`
	Workers           int       `mapstructure:"workers"`
	Species           string    `mapstructure:"species"`
	FreeSurferVersion string    `mapstructure:"freesurfer_version"`
	Atlases           []string  `mapstructure:"atlases"`
	Log               LogConfig `mapstructure:"log"`
}

// DefaultAtlases are the parcellations the pipeline produces connectomes for.
var DefaultAtlases = []string{"Brainnetome", "FreeSurfer_DK", "FreeSurfer_Destrieux"}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("random_trials", 5)
	v.SetDefault("threshold", 0.0)
	v.SetDefault("null_model", "uniform")
	v.SetDefault("delimiter", "")
	v.SetDefault("format", FormatJSON)
	v.SetDefault("workers", 4)
	v.SetDefault("species", SpeciesHuman)
	v.SetDefault("freesurfer_version", "none")
	v.SetDefault("atlases", DefaultAtlases)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_age", 28)
}

// Load reads configuration from the global viper instance, applying built-in
// defaults for any values not set by config file, environment, or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load over an explicit viper instance.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Species = strings.ToLower(cfg.Species)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.RandomTrials < 1:
		return fmt.Errorf("random_trials=%d must be ≥ 1: %w", c.RandomTrials, ErrInvalidConfig)
	case c.Threshold < 0 || math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0):
		return fmt.Errorf("threshold=%g must be finite and ≥ 0: %w", c.Threshold, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d must be ≥ 1: %w", c.Workers, ErrInvalidConfig)
	case c.Format != FormatJSON && c.Format != FormatYAML:
		return fmt.Errorf("format=%q must be json or yaml: %w", c.Format, ErrInvalidConfig)
	case c.Species != SpeciesHuman && c.Species != SpeciesNHP:
		return fmt.Errorf("species=%q must be human or nhp: %w", c.Species, ErrInvalidConfig)
	case !validNullModel(c.NullModel):
		return fmt.Errorf("null_model=%q must be uniform or degree-preserving: %w", c.NullModel, ErrInvalidConfig)
	case c.Log.MaxSize < 0 || c.Log.MaxAge < 0:
		return fmt.Errorf("log rotation limits must be ≥ 0: %w", ErrInvalidConfig)
	}

	return nil
}

func validNullModel(s string) bool {
	_, err := metrics.ParseNullModel(s)

	return err == nil
}
