// SPDX-License-Identifier: MIT
// Package: report
//
// types.go — the persisted report schema.

package report

import (
	"errors"
	"time"

	"github.com/katalvlaran/connectome/metrics"
)

// PipelineVersion identifies the processing pipeline that produced the inputs.
const PipelineVersion = "MRTRIX3_Enhanced_v2.0"

// FileName is the conventional report name inside a subject's output directory.
const FileName = "standardized_connectome_report.json"

var (
	// ErrNoSubject indicates a Generator without a subject identifier.
	ErrNoSubject = errors.New("report: subject is required")

	// ErrNoDir indicates a missing or unreadable output directory.
	ErrNoDir = errors.New("report: output directory not found")

	// ErrFormat indicates an unsupported report file extension.
	ErrFormat = errors.New("report: unsupported file format")
)

// Connectome is the analysis of one discovered matrix file.
type Connectome struct {
	Filepath     string         `json:"filepath" yaml:"filepath"`
	Atlas        string         `json:"atlas" yaml:"atlas"`
	Kind         string         `json:"metric_type" yaml:"metric_type"`
	BasicMetrics metrics.Record `json:"basic_metrics" yaml:"basic_metrics"`
	GraphMetrics metrics.Record `json:"graph_metrics" yaml:"graph_metrics"`
}

// FileCheck is the presence (and size) of one key pipeline artifact.
type FileCheck struct {
	Filename string   `json:"filename" yaml:"filename"`
	Exists   bool     `json:"exists" yaml:"exists"`
	SizeMB   *float64 `json:"size_mb,omitempty" yaml:"size_mb,omitempty"`
}

// Quality holds the processing quality checks.
type Quality struct {
	Files               map[string]FileCheck `json:"files" yaml:"files"`
	SIFTFilteringRatio  *float64             `json:"sift_filtering_ratio,omitempty" yaml:"sift_filtering_ratio,omitempty"`
	FreeSurferAvailable *bool                `json:"freesurfer_available,omitempty" yaml:"freesurfer_available,omitempty"`
}

// Parameters records the fixed tractography settings and the analysis knobs.
type Parameters struct {
	InitialTracks         string  `json:"initial_tracks" yaml:"initial_tracks"`
	FinalTracksSIFT       string  `json:"final_tracks_sift" yaml:"final_tracks_sift"`
	TractographyAlgorithm string  `json:"tractography_algorithm" yaml:"tractography_algorithm"`
	MaxLength             int     `json:"max_length" yaml:"max_length"`
	Cutoff                float64 `json:"cutoff" yaml:"cutoff"`
	SIFTApplied           bool    `json:"sift_applied" yaml:"sift_applied"`
	Species               string  `json:"species" yaml:"species"`
	Seed                  int64   `json:"seed" yaml:"seed"`
	RandomTrials          int     `json:"random_trials" yaml:"random_trials"`
	NullModel             string  `json:"null_model" yaml:"null_model"`
	Threshold             float64 `json:"threshold" yaml:"threshold"`
}

// Summary describes what the run produced.
type Summary struct {
	TotalConnectomes int        `json:"total_connectomes_generated" yaml:"total_connectomes_generated"`
	AvailableAtlases []string   `json:"available_atlases" yaml:"available_atlases"`
	AvailableMetrics []string   `json:"available_metrics" yaml:"available_metrics"`
	Parameters       Parameters `json:"processing_parameters" yaml:"processing_parameters"`
}

// Report is the standardized per-subject report.
type Report struct {
	ReportID          string                `json:"report_id" yaml:"report_id"`
	SubjectID         string                `json:"subject_id" yaml:"subject_id"`
	Species           string                `json:"species" yaml:"species"`
	ProcessingDate    time.Time             `json:"processing_date" yaml:"processing_date"`
	PipelineVersion   string                `json:"pipeline_version" yaml:"pipeline_version"`
	FreeSurferVersion string                `json:"freesurfer_version" yaml:"freesurfer_version"`
	Connectomes       map[string]Connectome `json:"connectomes" yaml:"connectomes"`
	Quality           Quality               `json:"quality_metrics" yaml:"quality_metrics"`
	Summary           Summary               `json:"processing_summary" yaml:"processing_summary"`
	Warnings          []string              `json:"warnings" yaml:"warnings"`
}
