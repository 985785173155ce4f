// SPDX-License-Identifier: MIT
// Package: cli
//
// aggregate.go — the aggregate command.

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectome/aggregate"
)

// SummaryFileName is the text summary written next to the CSV tables.
const SummaryFileName = "summary_statistics.txt"

func (a *app) aggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Combine subject reports into per-atlas tables and summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			out, _ := cmd.Flags().GetString("out")

			agg := &aggregate.Aggregator{Root: root, Atlases: a.cfg.Atlases, Logger: a.logger}
			if err := agg.Load(); err != nil {
				return err
			}
			paths, err := agg.WriteCSV(out)
			if err != nil {
				return err
			}
			summary := filepath.Join(out, SummaryFileName)
			if err = agg.WriteSummary(summary); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Aggregated %d subjects\n", len(agg.Subjects()))
			for _, p := range append(paths, summary) {
				fmt.Fprintf(w, "  %s\n", p)
			}

			return nil
		},
	}

	cmd.Flags().String("root", "", "directory holding one folder per session")
	cmd.Flags().String("out", "aggregated", "output directory")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}
