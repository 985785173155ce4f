// SPDX-License-Identifier: MIT
// Package: cli
//
// root.go — command tree, config and logger set-up.

// Package cli wires the connectome commands: cobra for the command tree,
// viper for configuration, slog for logging.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/connectome/internal/config"
	"github.com/katalvlaran/connectome/internal/logging"
	"github.com/katalvlaran/connectome/loader"
	"github.com/katalvlaran/connectome/metrics"
)

// app carries the state shared by one command tree.
type app struct {
	v        *viper.Viper
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := newApp()
	err := a.rootCmd().ExecuteContext(ctx)
	a.close()
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd returns a fresh command tree over its own viper instance.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{v: viper.New(), logger: slog.Default()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "connectome",
		Short: "Graph metrics for structural brain connectomes",
		Long: "connectome computes graph-theoretical metrics for weighted connectivity matrices, " +
			"builds standardized per-subject reports and aggregates them across subjects.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .connectome.yaml)")
	pf.Int64("seed", 0, "random seed for null models (0 selects the default seed)")
	pf.Int("random-trials", metrics.DefaultRandomTrials, "null-model graphs averaged for small-worldness")
	pf.Float64("threshold", metrics.DefaultThreshold, "drop edges with weight ≤ threshold")
	pf.String("null-model", metrics.NullModelUniform.String(), "null model: uniform or degree-preserving")
	pf.String("delimiter", "", "matrix delimiter: auto, comma, tab, space or a single character")
	pf.String("format", config.FormatJSON, "output format: json or yaml")
	pf.Int("workers", 4, "connectomes analyzed in parallel")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("log-file", "", "log to a rotating file instead of stderr")
	bindFlags(a.v, pf, map[string]string{
		"seed":          "seed",
		"random-trials": "random_trials",
		"threshold":     "threshold",
		"null-model":    "null_model",
		"delimiter":     "delimiter",
		"format":        "format",
		"workers":       "workers",
		"log-level":     "log.level",
		"log-format":    "log.format",
		"log-file":      "log.file",
	})

	root.AddCommand(a.metricsCmd(), a.reportCmd(), a.aggregateCmd(), a.synthCmd())

	return root
}

// bindFlags binds each flag to its viper key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("cli: bind %s: %v", flag, err))
		}
	}
}

// initConfig reads the config file and environment, then builds the logger.
// A missing default config file is fine; a missing explicit one is not.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".connectome")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	a.v.SetEnvPrefix("CONNECTOME")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.cfg, a.logger, a.closeLog = cfg, logger, closer
	a.logger.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "seed", cfg.Seed, "workers", cfg.Workers)

	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

// loaderOptions maps the configured delimiter to loader options.
func (a *app) loaderOptions() ([]loader.Option, error) {
	d, err := loader.ParseDelimiter(a.cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, nil
	}

	return []loader.Option{loader.WithDelimiter(d)}, nil
}

func (a *app) nullModel() (metrics.NullModel, error) {
	return metrics.ParseNullModel(a.cfg.NullModel)
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
