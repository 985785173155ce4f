// SPDX-License-Identifier: MIT
// Package: report
//
// quality.go — pipeline artifact checks and the processing summary.

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/connectome/metrics"
)

// KeyFiles maps a quality key to the artifact the pipeline must leave behind.
var KeyFiles = map[string]string{
	"tracks_original": "tracks_10M_hollander.tck",
	"tracks_sift":     "sift_1M_hollander.tck",
	"wmfod":           "wmfod_norm_hollander.mif",
	"mask":            "mask.mif",
	"mean_b0":         "mean_b0_processed.mif",
}

// siftRatio is the nominal SIFT retention (10M → 1M streamlines).
const siftRatio = 0.1

const bytesPerMB = 1024 * 1024

// currentFreeSurfer lists versions that do not trigger the old-version warning.
var currentFreeSurfer = map[string]bool{
	"freesurfer8.0": true,
	"FreeSurfer7":   true,
}

// checkQuality inspects dir and returns the checks plus any warnings.
func checkQuality(dir, species, fsVersion string) (Quality, []string) {
	q := Quality{Files: make(map[string]FileCheck, len(KeyFiles))}
	for key, name := range KeyFiles {
		fc := FileCheck{Filename: name}
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && !fi.IsDir() {
			fc.Exists = true
			mb := metrics.Round(float64(fi.Size())/bytesPerMB, 2)
			fc.SizeMB = &mb
		}
		q.Files[key] = fc
	}

	if q.Files["tracks_original"].Exists && q.Files["tracks_sift"].Exists {
		r := siftRatio
		q.SIFTFilteringRatio = &r
	}

	var warnings []string
	if species == "human" {
		available := fsVersion != "none"
		q.FreeSurferAvailable = &available
		if !currentFreeSurfer[fsVersion] {
			warnings = append(warnings, fmt.Sprintf("Using old FreeSurfer version: %s", fsVersion))
		}
	}

	return q, warnings
}

// summarize describes the discovered sources.
func summarize(sources []Source, atlases []string, params Parameters) Summary {
	s := Summary{
		TotalConnectomes: len(sources),
		AvailableAtlases: []string{},
		AvailableMetrics: []string{KindCounts},
		Parameters:       params,
	}
	seen := make(map[string]bool, len(atlases))
	for _, src := range sources {
		seen[src.Atlas] = true
		if src.Kind == KindScaled {
			s.AvailableMetrics = []string{KindCounts, KindScaled}
		}
	}
	for _, atlas := range atlases {
		if seen[atlas] {
			s.AvailableAtlases = append(s.AvailableAtlases, atlas)
		}
	}

	return s
}

// defaultParameters are the tractography settings of the pipeline.
func defaultParameters(species string) Parameters {
	return Parameters{
		InitialTracks:         "10M",
		FinalTracksSIFT:       "1M",
		TractographyAlgorithm: "iFOD2_ACT",
		MaxLength:             250,
		Cutoff:                0.06,
		SIFTApplied:           true,
		Species:               species,
	}
}
