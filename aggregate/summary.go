// SPDX-License-Identifier: MIT
// Package: aggregate
//
// summary.go — descriptive statistics over scaled connectomes.

package aggregate

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/connectome/report"
)

// Stat describes one metric across subjects. Std is the sample standard
// deviation and is NaN when N < 2.
type Stat struct {
	Metric string
	N      int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

// AtlasSummary holds the statistics of one atlas.
type AtlasSummary struct {
	Atlas string
	Basic []Stat
	Graph []Stat
}

// Summary computes per-metric statistics over the scaled rows of every atlas.
// Null values are ignored; metrics without any value are omitted.
func (a *Aggregator) Summary() []AtlasSummary {
	tables := a.Tables()
	out := make([]AtlasSummary, 0, len(tables))
	for _, at := range tables {
		out = append(out, AtlasSummary{
			Atlas: at.Atlas,
			Basic: describe(at.Basic),
			Graph: describe(at.Graph),
		})
	}

	return out
}

func describe(tbl Table) []Stat {
	var out []Stat
	for _, col := range tbl.Columns {
		var values []float64
		for _, row := range tbl.Rows {
			if row.Kind != report.KindScaled {
				continue
			}
			if v := row.Values[col]; v != nil {
				values = append(values, *v)
			}
		}
		if len(values) == 0 {
			continue
		}
		s := Stat{
			Metric: col,
			N:      len(values),
			Std:    math.NaN(),
			Min:    floats.Min(values),
			Max:    floats.Max(values),
		}
		if len(values) > 1 {
			s.Mean, s.Std = stat.MeanStdDev(values, nil)
		} else {
			s.Mean = values[0]
		}
		out = append(out, s)
	}

	return out
}

const (
	titleRule   = "=================================================="
	sectionRule = "------------------------------"
)

// WriteSummaryTo renders Summary as plain text.
func (a *Aggregator) WriteSummaryTo(w io.Writer) error {
	var b strings.Builder
	b.WriteString("CONNECTOME DATA SUMMARY STATISTICS\n")
	b.WriteString(titleRule + "\n\n")
	for _, s := range a.Summary() {
		fmt.Fprintf(&b, "\n%s ATLAS\n%s\n", strings.ToUpper(s.Atlas), sectionRule)
		b.WriteString("\nBASIC METRICS (Scaled):\n")
		writeStats(&b, s.Basic)
		b.WriteString("\nGRAPH METRICS (Scaled):\n")
		writeStats(&b, s.Graph)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func writeStats(b *strings.Builder, stats []Stat) {
	for _, s := range stats {
		std := "n/a"
		if !math.IsNaN(s.Std) {
			std = fmt.Sprintf("%.4f", s.Std)
		}
		fmt.Fprintf(b, "  %s: Mean=%.4f, Std=%s, Range=[%.4f, %.4f]\n", s.Metric, s.Mean, std, s.Min, s.Max)
	}
}

// WriteSummary writes the text summary to path.
func (a *Aggregator) WriteSummary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	if err = a.WriteSummaryTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("aggregate: %s: %w", path, err)
	}

	return f.Close()
}
