// SPDX-License-Identifier: MIT
// Package: cli
//
// report.go — the report command.

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectome/internal/config"
	"github.com/katalvlaran/connectome/report"
)

func (a *app) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the standardized connectome report for one subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			dir, _ := cmd.Flags().GetString("dir")
			out, _ := cmd.Flags().GetString("out")

			lopts, err := a.loaderOptions()
			if err != nil {
				return err
			}
			nm, err := a.nullModel()
			if err != nil {
				return err
			}

			gen := &report.Generator{
				Subject:           subject,
				Dir:               dir,
				Species:           a.cfg.Species,
				FreeSurferVersion: a.cfg.FreeSurferVersion,
				Atlases:           a.cfg.Atlases,
				Workers:           a.cfg.Workers,
				Seed:              a.cfg.Seed,
				RandomTrials:      a.cfg.RandomTrials,
				Threshold:         a.cfg.Threshold,
				NullModel:         nm,
				LoaderOptions:     lopts,
				Logger:            a.logger,
			}
			rep, err := gen.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if out == "" {
				out = filepath.Join(dir, reportFileName(a.cfg.Format))
			}
			if err = rep.Save(out); err != nil {
				return err
			}
			a.logger.Info("report saved", "path", out, "connectomes", len(rep.Connectomes))

			w := cmd.OutOrStdout()
			rep.PrintSummary(w)
			fmt.Fprintf(w, "\nReport saved to %s\n", out)

			return nil
		},
	}

	f := cmd.Flags()
	f.String("subject", "", "subject identifier")
	f.String("dir", "", "pipeline output directory holding the connectome files")
	f.String("out", "", "report path (default <dir>/"+report.FileName+")")
	f.String("species", config.SpeciesHuman, "species: human or nhp")
	f.String("freesurfer-version", "none", "FreeSurfer version used for parcellation")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("dir")
	bindFlags(a.v, f, map[string]string{
		"species":            "species",
		"freesurfer-version": "freesurfer_version",
	})

	return cmd
}

// reportFileName swaps the conventional extension for YAML output.
func reportFileName(format string) string {
	if format == config.FormatYAML {
		return strings.TrimSuffix(report.FileName, filepath.Ext(report.FileName)) + ".yaml"
	}

	return report.FileName
}
