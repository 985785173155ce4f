// SPDX-License-Identifier: MIT
// Package: cli
//
// metrics.go — the metrics command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectome/loader"
	"github.com/katalvlaran/connectome/metrics"
)

// metricsOutput groups one record the way reports do.
type metricsOutput struct {
	File         string         `json:"file" yaml:"file"`
	BasicMetrics metrics.Record `json:"basic_metrics" yaml:"basic_metrics"`
	GraphMetrics metrics.Record `json:"graph_metrics" yaml:"graph_metrics"`
}

func (a *app) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics <file>",
		Short: "Compute graph metrics for one connectivity matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lopts, err := a.loaderOptions()
			if err != nil {
				return err
			}
			nm, err := a.nullModel()
			if err != nil {
				return err
			}

			m, err := loader.Load(args[0], lopts...)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			rec, err := metrics.Compute(m,
				metrics.WithSeed(a.cfg.Seed),
				metrics.WithRandomTrials(a.cfg.RandomTrials),
				metrics.WithThreshold(a.cfg.Threshold),
				metrics.WithNullModel(nm),
			)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", args[0], err)
			}
			a.logger.Info("computed metrics", "file", args[0], "nodes", m.Rows())

			return encode(cmd.OutOrStdout(), a.cfg.Format, metricsOutput{
				File:         args[0],
				BasicMetrics: rec.Subset(metrics.BasicFields...),
				GraphMetrics: rec.Subset(metrics.GraphFields...),
			})
		},
	}
}
