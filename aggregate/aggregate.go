// SPDX-License-Identifier: MIT
// Package: aggregate
//
// aggregate.go — report discovery and loading.

package aggregate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/connectome/internal/logging"
	"github.com/katalvlaran/connectome/report"
)

// ErrNoReports indicates that no report could be found or loaded.
var ErrNoReports = errors.New("aggregate: no reports found")

// nestedReportDir is the pipeline output folder inside a session.
var nestedReportDir = filepath.Join("DTI", "mrtrix3_outputs")

// FindReports returns the report path of every session directory under root,
// in session-name order. Sessions without a report are skipped.
func FindReports(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		session := filepath.Join(root, e.Name())
		for _, candidate := range []string{
			filepath.Join(session, nestedReportDir, report.FileName),
			filepath.Join(session, report.FileName),
		} {
			if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
				out = append(out, candidate)
				break
			}
		}
	}

	return out, nil
}

// Aggregator accumulates reports keyed by subject.
type Aggregator struct {
	Root    string
	Atlases []string // report.DefaultAtlases when empty
	Logger  *slog.Logger

	reports map[string]*report.Report
}

// Load reads every report under Root. Unreadable files are logged and
// skipped; ErrNoReports is returned when nothing could be loaded. A report
// without subject_id is keyed by its session directory name.
func (a *Aggregator) Load() error {
	log := logging.OrDefault(a.Logger)
	paths, err := FindReports(a.Root)
	if err != nil {
		return err
	}
	log.Info("found reports", "root", a.Root, "count", len(paths))
	if len(paths) == 0 {
		return fmt.Errorf("%s: %w", a.Root, ErrNoReports)
	}

	a.reports = make(map[string]*report.Report, len(paths))
	for _, path := range paths {
		rep, err := report.Load(path)
		if err != nil {
			log.Error("skipping unreadable report", "path", path, "err", err)
			continue
		}
		subject := rep.SubjectID
		if subject == "" {
			subject = sessionOf(a.Root, path)
		}
		a.reports[subject] = rep
	}
	if len(a.reports) == 0 {
		return fmt.Errorf("%s: %w", a.Root, ErrNoReports)
	}
	log.Info("loaded reports", "subjects", len(a.reports))

	return nil
}

// Add registers rep under subject (for callers that already hold reports).
func (a *Aggregator) Add(subject string, rep *report.Report) {
	if a.reports == nil {
		a.reports = make(map[string]*report.Report)
	}
	a.reports[subject] = rep
}

// Subjects returns the loaded subject ids in sorted order.
func (a *Aggregator) Subjects() []string {
	out := make([]string, 0, len(a.reports))
	for s := range a.reports {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

func (a *Aggregator) atlases() []string {
	if len(a.Atlases) == 0 {
		return report.DefaultAtlases
	}

	return a.Atlases
}

// sessionOf returns the first path element of path below root.
func sessionOf(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(filepath.Dir(path))
	}
	for {
		dir := filepath.Dir(rel)
		if dir == "." || dir == string(filepath.Separator) {
			return rel
		}
		rel = dir
	}
}
