// SPDX-License-Identifier: MIT
// Package: report
//
// discover.go — locating connectome files in a pipeline output directory.

package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Connectome kinds written by the pipeline.
const (
	KindCounts = "counts"
	KindScaled = "scaled"
)

// Kinds lists the connectome kinds in discovery order.
var Kinds = []string{KindCounts, KindScaled}

// Source is one discovered connectome file.
type Source struct {
	Name  string // <Atlas>_<kind>
	Atlas string
	Kind  string
	Path  string
}

// FilenameFor returns connectome_<atlas>_<kind>.csv.
func FilenameFor(atlas, kind string) string {
	return fmt.Sprintf("connectome_%s_%s.csv", atlas, kind)
}

// Discover returns the connectome files present in dir, ordered by atlas (as
// given) then kind (counts before scaled). Absent files are skipped.
func Discover(dir string, atlases []string) ([]Source, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDir)
	}

	var out []Source
	for _, atlas := range atlases {
		for _, kind := range Kinds {
			path := filepath.Join(dir, FilenameFor(atlas, kind))
			fi, err := os.Stat(path)
			if err != nil || fi.IsDir() {
				continue
			}
			out = append(out, Source{
				Name:  atlas + "_" + kind,
				Atlas: atlas,
				Kind:  kind,
				Path:  path,
			})
		}
	}

	return out, nil
}
