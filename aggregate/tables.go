// SPDX-License-Identifier: MIT
// Package: aggregate
//
// tables.go — per-atlas metric tables and their CSV export.

package aggregate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/katalvlaran/connectome/metrics"
	"github.com/katalvlaran/connectome/report"
)

// Identifier columns leading every CSV row.
var idColumns = []string{"subject_id", "atlas", "metric_type"}

// Row is one connectome of one subject.
type Row struct {
	Subject string
	Atlas   string
	Kind    string
	Values  metrics.Record
}

// Table holds the rows of one atlas for basic or graph metrics.
type Table struct {
	Columns []string // metric columns, canonical order first
	Rows    []Row
}

// AtlasTables pairs the basic and graph tables of one atlas.
type AtlasTables struct {
	Atlas string
	Basic Table
	Graph Table
}

// Tables builds one AtlasTables per atlas that has at least one row, in
// atlas order; rows are ordered by subject then kind (counts, scaled).
func (a *Aggregator) Tables() []AtlasTables {
	subjects := a.Subjects()
	var out []AtlasTables
	for _, atlas := range a.atlases() {
		at := AtlasTables{Atlas: atlas}
		for _, subject := range subjects {
			rep := a.reports[subject]
			for _, kind := range report.Kinds {
				c, ok := rep.Connectomes[atlas+"_"+kind]
				if !ok {
					continue
				}
				if len(c.BasicMetrics) > 0 {
					at.Basic.Rows = append(at.Basic.Rows, Row{Subject: subject, Atlas: atlas, Kind: kind, Values: c.BasicMetrics})
				}
				if len(c.GraphMetrics) > 0 {
					at.Graph.Rows = append(at.Graph.Rows, Row{Subject: subject, Atlas: atlas, Kind: kind, Values: c.GraphMetrics})
				}
			}
		}
		if len(at.Basic.Rows) == 0 {
			continue
		}
		at.Basic.Columns = columnsOf(at.Basic.Rows, metrics.BasicFields)
		at.Graph.Columns = columnsOf(at.Graph.Rows, metrics.GraphFields)
		out = append(out, at)
	}

	return out
}

// columnsOf lists canonical names present in rows, then any extra names sorted.
func columnsOf(rows []Row, canonical []string) []string {
	present := make(map[string]bool)
	for _, r := range rows {
		for name := range r.Values {
			present[name] = true
		}
	}
	cols := make([]string, 0, len(present))
	for _, name := range canonical {
		if present[name] {
			cols = append(cols, name)
			delete(present, name)
		}
	}
	extra := make([]string, 0, len(present))
	for name := range present {
		extra = append(extra, name)
	}
	sort.Strings(extra)

	return append(cols, extra...)
}

// WriteCSV writes <atlas>_basic_metrics.csv and <atlas>_graph_metrics.csv
// for every atlas into dir (created if needed) and returns the paths written.
func (a *Aggregator) WriteCSV(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	var written []string
	for _, at := range a.Tables() {
		for suffix, tbl := range map[string]Table{"basic": at.Basic, "graph": at.Graph} {
			path := filepath.Join(dir, fmt.Sprintf("%s_%s_metrics.csv", at.Atlas, suffix))
			if err := writeTable(path, tbl); err != nil {
				return nil, err
			}
			written = append(written, path)
		}
	}
	sort.Strings(written)

	return written, nil
}

func writeTable(path string, tbl Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	w := csv.NewWriter(f)
	header := append(append([]string{}, idColumns...), tbl.Columns...)
	if err = w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("aggregate: %s: %w", path, err)
	}
	record := make([]string, len(header))
	for _, row := range tbl.Rows {
		record[0], record[1], record[2] = row.Subject, row.Atlas, row.Kind
		for i, col := range tbl.Columns {
			record[len(idColumns)+i] = formatCell(row.Values[col])
		}
		if err = w.Write(record); err != nil {
			_ = f.Close()
			return fmt.Errorf("aggregate: %s: %w", path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("aggregate: %s: %w", path, err)
	}

	return f.Close()
}

// formatCell renders null as an empty cell.
func formatCell(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'g', -1, 64)
}
