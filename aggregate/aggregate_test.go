// SPDX-License-Identifier: MIT
package aggregate_test

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectome/aggregate"
	"github.com/katalvlaran/connectome/metrics"
	"github.com/katalvlaran/connectome/report"
)

func ptr(v float64) *float64 { return &v }

// dkReport has FreeSurfer_DK counts and scaled connectomes; the scaled one
// carries the given streamline total and efficiency.
func dkReport(subject string, streamlines, efficiency float64) *report.Report {
	conn := func(kind string, total, eff float64) report.Connectome {
		return report.Connectome{
			Atlas: "FreeSurfer_DK",
			Kind:  kind,
			BasicMetrics: metrics.Record{
				metrics.FieldTotalStreamlines: ptr(total),
				metrics.FieldNodes:            ptr(84),
			},
			GraphMetrics: metrics.Record{
				metrics.FieldDiameter:         nil,
				metrics.FieldGlobalEfficiency: ptr(eff),
			},
		}
	}

	return &report.Report{
		SubjectID: subject,
		Connectomes: map[string]report.Connectome{
			"FreeSurfer_DK_counts": conn(report.KindCounts, 1000*streamlines, 0.1),
			"FreeSurfer_DK_scaled": conn(report.KindScaled, streamlines, efficiency),
		},
	}
}

func save(t *testing.T, rep *report.Report, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, rep.Save(filepath.Join(dir, report.FileName)))
}

// studyTree lays out a nested session, a flat session without subject id,
// a corrupt report and an empty session.
func studyTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	save(t, dkReport("sub-A", 10, 0.5), filepath.Join(root, "ses-A", "DTI", "mrtrix3_outputs"))
	save(t, dkReport("", 20, 0.7), filepath.Join(root, "ses-B"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ses-C"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ses-C", report.FileName), []byte("{broken"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ses-D"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	return root
}

func TestFindReports(t *testing.T) {
	t.Parallel()

	root := studyTree(t)
	got, err := aggregate.FindReports(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "ses-A", "DTI", "mrtrix3_outputs", report.FileName),
		filepath.Join(root, "ses-B", report.FileName),
		filepath.Join(root, "ses-C", report.FileName),
	}, got)

	_, err = aggregate.FindReports(filepath.Join(root, "missing"))
	require.Error(t, err)
}

func TestLoad_SkipsBadReports(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{Root: studyTree(t)}
	require.NoError(t, agg.Load())
	assert.Equal(t, []string{"ses-B", "sub-A"}, agg.Subjects())
}

func TestLoad_NoReports(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{Root: t.TempDir()}
	require.ErrorIs(t, agg.Load(), aggregate.ErrNoReports)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ses-X"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ses-X", report.FileName), []byte("[]"), 0o644))
	agg = &aggregate.Aggregator{Root: root}
	require.ErrorIs(t, agg.Load(), aggregate.ErrNoReports)
}

func TestTables(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{Root: studyTree(t)}
	require.NoError(t, agg.Load())

	tables := agg.Tables()
	require.Len(t, tables, 1)
	at := tables[0]
	assert.Equal(t, "FreeSurfer_DK", at.Atlas)
	assert.Equal(t, []string{metrics.FieldNodes, metrics.FieldTotalStreamlines}, at.Basic.Columns)
	assert.Equal(t, []string{metrics.FieldGlobalEfficiency, metrics.FieldDiameter}, at.Graph.Columns)

	require.Len(t, at.Basic.Rows, 4)
	assert.Equal(t, "ses-B", at.Basic.Rows[0].Subject)
	assert.Equal(t, report.KindCounts, at.Basic.Rows[0].Kind)
	assert.Equal(t, report.KindScaled, at.Basic.Rows[1].Kind)
	assert.Equal(t, "sub-A", at.Basic.Rows[2].Subject)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{Root: studyTree(t)}
	require.NoError(t, agg.Load())

	out := filepath.Join(t.TempDir(), "tables")
	paths, err := agg.WriteCSV(out)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "FreeSurfer_DK_basic_metrics.csv"),
		filepath.Join(out, "FreeSurfer_DK_graph_metrics.csv"),
	}, paths)

	f, err := os.Open(paths[1])
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"subject_id", "atlas", "metric_type", "global_efficiency", "diameter"}, rows[0])
	assert.Equal(t, []string{"sub-A", "FreeSurfer_DK", "scaled", "0.5", ""}, rows[4])
}

func TestSummary(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{Root: studyTree(t)}
	require.NoError(t, agg.Load())

	sum := agg.Summary()
	require.Len(t, sum, 1)

	require.Len(t, sum[0].Basic, 2)
	st := sum[0].Basic[1]
	assert.Equal(t, metrics.FieldTotalStreamlines, st.Metric)
	assert.Equal(t, 2, st.N)
	assert.InDelta(t, 15.0, st.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(50), st.Std, 1e-12)
	assert.Equal(t, 10.0, st.Min)
	assert.Equal(t, 20.0, st.Max)

	// All-null diameter is omitted.
	require.Len(t, sum[0].Graph, 1)
	assert.InDelta(t, 0.6, sum[0].Graph[0].Mean, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, agg.WriteSummaryTo(&buf))
	text := buf.String()
	assert.Contains(t, text, "FREESURFER_DK ATLAS")
	assert.Contains(t, text, "total_streamlines: Mean=15.0000, Std=7.0711, Range=[10.0000, 20.0000]")
	assert.Contains(t, text, "n_nodes: Mean=84.0000, Std=0.0000")
}

func TestSummary_SingleSubject(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{}
	agg.Add("sub-01", dkReport("sub-01", 10, 0.5))

	sum := agg.Summary()
	require.Len(t, sum, 1)
	assert.True(t, math.IsNaN(sum[0].Basic[0].Std))

	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, agg.WriteSummary(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Std=n/a")
}
