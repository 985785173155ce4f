// SPDX-License-Identifier: MIT
// Package: report
//
// io.go — persistence and the human-readable summary.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/connectome/metrics"
)

// Format is the serialization chosen by file extension.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor maps .json → JSON and .yaml/.yml → YAML.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrFormat)
	}
}

// Encode writes r to w in format f (JSON is indented by two spaces).
func (r *Report) Encode(w io.Writer, f Format) error {
	if f == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// Save writes r to path; the extension selects JSON or YAML.
func (r *Report) Save(path string) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = r.Encode(out, f); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// Decode reads a report in format f. Legacy metric names are normalized.
func Decode(rd io.Reader, f Format) (*Report, error) {
	var r Report
	var err error
	if f == FormatYAML {
		err = yaml.NewDecoder(rd).Decode(&r)
	} else {
		err = json.NewDecoder(rd).Decode(&r)
	}
	if err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	for name, c := range r.Connectomes {
		c.BasicMetrics = c.BasicMetrics.Normalize()
		c.GraphMetrics = c.GraphMetrics.Normalize()
		r.Connectomes[name] = c
	}

	return &r, nil
}

// Load reads a report saved by Save.
func Load(path string) (*Report, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer in.Close()

	r, err := Decode(in, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// ConnectomeNames returns the connectome keys in sorted order.
func (r *Report) ConnectomeNames() []string {
	names := make([]string, 0, len(r.Connectomes))
	for name := range r.Connectomes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

const rule = "============================================================"

// PrintSummary writes a human-readable overview of r to w.
func (r *Report) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nCONNECTOME PROCESSING SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(w, "Subject: %s\n", r.SubjectID)
	fmt.Fprintf(w, "Species: %s\n", speciesLabel(r.Species))
	fmt.Fprintf(w, "FreeSurfer Version: %s\n", r.FreeSurferVersion)
	fmt.Fprintf(w, "Processing Date: %s (%s)\n", r.ProcessingDate.Format("2006-01-02T15:04:05Z07:00"), humanize.Time(r.ProcessingDate))

	fmt.Fprintf(w, "\nCONNECTOMES GENERATED:\n")
	for _, name := range r.ConnectomeNames() {
		basic := r.Connectomes[name].BasicMetrics
		nodes, _ := basic.Get(metrics.FieldNodes)
		streamlines, _ := basic.Get(metrics.FieldTotalStreamlines)
		conns, _ := basic.Get(metrics.FieldTotalConnections)
		density, _ := basic.Get(metrics.FieldConnectionDensity)
		fmt.Fprintf(w, "  %s:\n", name)
		fmt.Fprintf(w, "    Nodes: %s\n", humanize.Comma(int64(nodes)))
		fmt.Fprintf(w, "    Total Streamlines: %s\n", humanize.Commaf(streamlines))
		fmt.Fprintf(w, "    Total Connections: %s\n", humanize.Comma(int64(conns)))
		fmt.Fprintf(w, "    Connection Density: %.6f\n", density)
		if sigma, ok := r.Connectomes[name].GraphMetrics.Get(metrics.FieldSmallWorldness); ok {
			fmt.Fprintf(w, "    Small-worldness: %.3f\n", sigma)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\nWARNINGS:\n")
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	fmt.Fprintf(w, "\nAtlases Available: %s\n", strings.Join(r.Summary.AvailableAtlases, ", "))
	fmt.Fprintf(w, "%s\n\n", rule)
}

func speciesLabel(s string) string {
	switch s {
	case "nhp":
		return "NHP"
	case "":
		return ""
	default:
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
