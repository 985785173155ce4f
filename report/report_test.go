// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectome/builder"
	"github.com/katalvlaran/connectome/loader"
	"github.com/katalvlaran/connectome/metrics"
	"github.com/katalvlaran/connectome/report"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC) }

// writeConnectome stores a synthetic small-world matrix as atlas/kind.
func writeConnectome(t *testing.T, dir, atlas, kind string, n int, seed int64) {
	t.Helper()
	m, err := builder.Build(n, []builder.Constructor{builder.SmallWorld(2, n/4)},
		builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 500)))
	require.NoError(t, err)
	require.NoError(t, loader.Save(filepath.Join(dir, report.FilenameFor(atlas, kind)), m, loader.Comma))
}

func touch(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConnectome(t, dir, "FreeSurfer_DK", report.KindScaled, 12, 1)
	writeConnectome(t, dir, "Brainnetome", report.KindCounts, 12, 2)
	writeConnectome(t, dir, "FreeSurfer_DK", report.KindCounts, 12, 3)

	got, err := report.Discover(dir, report.DefaultAtlases)
	require.NoError(t, err)
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Brainnetome_counts", "FreeSurfer_DK_counts", "FreeSurfer_DK_scaled"}, names)

	_, err = report.Discover(filepath.Join(dir, "missing"), report.DefaultAtlases)
	require.ErrorIs(t, err, report.ErrNoDir)
}

func TestGenerate_FullRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConnectome(t, dir, "FreeSurfer_DK", report.KindCounts, 20, 1)
	writeConnectome(t, dir, "FreeSurfer_DK", report.KindScaled, 20, 2)
	writeConnectome(t, dir, "Brainnetome", report.KindCounts, 24, 3)
	// A rectangular matrix becomes a warning, not a failure.
	require.NoError(t, os.WriteFile(filepath.Join(dir, report.FilenameFor("FreeSurfer_Destrieux", report.KindCounts)),
		[]byte("0,1,2\n1,0,3\n"), 0o644))
	touch(t, filepath.Join(dir, "tracks_10M_hollander.tck"), 2*1024*1024)
	touch(t, filepath.Join(dir, "sift_1M_hollander.tck"), 1024)

	gen := &report.Generator{
		Subject: "sub-01",
		Dir:     dir,
		Workers: 2,
		Seed:    7,
		Now:     fixedNow,
	}
	rep, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, "human", rep.Species)
	assert.Equal(t, report.PipelineVersion, rep.PipelineVersion)
	assert.Equal(t, fixedNow(), rep.ProcessingDate)
	require.Len(t, rep.Connectomes, 3)

	dk := rep.Connectomes["FreeSurfer_DK_counts"]
	assert.Equal(t, "FreeSurfer_DK", dk.Atlas)
	assert.Equal(t, report.KindCounts, dk.Kind)
	assert.Len(t, dk.BasicMetrics, len(metrics.BasicFields))
	assert.Len(t, dk.GraphMetrics, len(metrics.GraphFields))
	nodes, ok := dk.BasicMetrics.Get(metrics.FieldNodes)
	require.True(t, ok)
	assert.Equal(t, 20.0, nodes)

	assert.Contains(t, rep.Warnings, "Failed to load connectome: FreeSurfer_Destrieux_counts")
	assert.Contains(t, rep.Warnings, "Using old FreeSurfer version: none")

	orig := rep.Quality.Files["tracks_original"]
	require.True(t, orig.Exists)
	require.NotNil(t, orig.SizeMB)
	assert.Equal(t, 2.0, *orig.SizeMB)
	assert.False(t, rep.Quality.Files["mask"].Exists)
	require.NotNil(t, rep.Quality.SIFTFilteringRatio)
	assert.Equal(t, 0.1, *rep.Quality.SIFTFilteringRatio)
	require.NotNil(t, rep.Quality.FreeSurferAvailable)
	assert.False(t, *rep.Quality.FreeSurferAvailable)

	assert.Equal(t, 4, rep.Summary.TotalConnectomes)
	assert.Equal(t, []string{"Brainnetome", "FreeSurfer_DK", "FreeSurfer_Destrieux"}, rep.Summary.AvailableAtlases)
	assert.Equal(t, []string{report.KindCounts, report.KindScaled}, rep.Summary.AvailableMetrics)
	assert.Equal(t, "iFOD2_ACT", rep.Summary.Parameters.TractographyAlgorithm)
	assert.Equal(t, metrics.DefaultRandomTrials, rep.Summary.Parameters.RandomTrials)
}

// Parallel runs with the same seed must produce identical metrics.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i, atlas := range report.DefaultAtlases {
		writeConnectome(t, dir, atlas, report.KindScaled, 16, int64(i+1))
	}
	run := func(workers int) *report.Report {
		gen := &report.Generator{Subject: "sub-02", Dir: dir, Species: "nhp", Workers: workers, Seed: 3, Now: fixedNow}
		rep, err := gen.Generate(context.Background())
		require.NoError(t, err)
		return rep
	}
	a, b := run(1), run(3)
	for _, name := range a.ConnectomeNames() {
		for field, v := range a.Connectomes[name].GraphMetrics {
			assert.Equal(t, v, b.Connectomes[name].GraphMetrics[field], "%s/%s", name, field)
		}
	}
	// No FreeSurfer checks for NHP.
	assert.Nil(t, a.Quality.FreeSurferAvailable)
	assert.Empty(t, a.Warnings)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := (&report.Generator{Dir: t.TempDir()}).Generate(context.Background())
	require.ErrorIs(t, err, report.ErrNoSubject)

	_, err = (&report.Generator{Subject: "s", Dir: filepath.Join(t.TempDir(), "nope")}).Generate(context.Background())
	require.ErrorIs(t, err, report.ErrNoDir)

	dir := t.TempDir()
	writeConnectome(t, dir, "Brainnetome", report.KindCounts, 10, 1)
	for _, g := range []*report.Generator{
		{Subject: "s", Dir: dir, Threshold: -1},
		{Subject: "s", Dir: dir, Threshold: math.NaN()},
		{Subject: "s", Dir: dir, Threshold: math.Inf(1)},
		{Subject: "s", Dir: dir, NullModel: metrics.NullModel(7)},
	} {
		_, err = g.Generate(context.Background())
		require.ErrorIs(t, err, metrics.ErrInvalidOption)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&report.Generator{Subject: "s", Dir: dir}).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_NoConnectomes(t *testing.T) {
	t.Parallel()

	rep, err := (&report.Generator{Subject: "s", Dir: t.TempDir(), FreeSurferVersion: "FreeSurfer7"}).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"No connectome files found"}, rep.Warnings)
	assert.Empty(t, rep.Connectomes)
	assert.True(t, *rep.Quality.FreeSurferAvailable)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConnectome(t, dir, "FreeSurfer_DK", report.KindScaled, 12, 5)
	rep, err := (&report.Generator{Subject: "sub-03", Dir: dir, Now: fixedNow}).Generate(context.Background())
	require.NoError(t, err)

	for _, name := range []string{report.FileName, "report.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, rep.Save(path))
		back, err := report.Load(path)
		require.NoError(t, err, name)

		assert.Equal(t, rep.ReportID, back.ReportID, name)
		assert.True(t, rep.ProcessingDate.Equal(back.ProcessingDate), name)
		assert.Equal(t, rep.Summary, back.Summary, name)
		assert.Equal(t, rep.Quality, back.Quality, name)
		assert.Equal(t, rep.Connectomes, back.Connectomes, name)
	}

	require.ErrorIs(t, rep.Save(filepath.Join(dir, "report.txt")), report.ErrFormat)
}

func TestLoad_NormalizesLegacyNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), report.FileName)
	legacy := `{"subject_id":"old","connectomes":{"Brainnetome_scaled":{
		"basic_metrics":{"n_nodes":246},
		"graph_metrics":{"mean_clustering_coefficient":0.41,"global_efficiency_approx":0.2}}}}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	rep, err := report.Load(path)
	require.NoError(t, err)
	g := rep.Connectomes["Brainnetome_scaled"].GraphMetrics
	v, ok := g.Get(metrics.FieldBinaryClustering)
	require.True(t, ok)
	assert.Equal(t, 0.41, v)
	_, stale := g["mean_clustering_coefficient"]
	assert.False(t, stale)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	streamlines, nodes, conns, density := 1234567.0, 84.0, 1500.0, 0.430293
	rep := &report.Report{
		SubjectID:         "sub-04",
		Species:           "nhp",
		FreeSurferVersion: "none",
		ProcessingDate:    fixedNow(),
		Connectomes: map[string]report.Connectome{
			"FreeSurfer_DK_counts": {BasicMetrics: metrics.Record{
				metrics.FieldNodes:             &nodes,
				metrics.FieldTotalStreamlines:  &streamlines,
				metrics.FieldTotalConnections:  &conns,
				metrics.FieldConnectionDensity: &density,
			}},
		},
		Warnings: []string{"No connectome files found"},
		Summary:  report.Summary{AvailableAtlases: []string{"FreeSurfer_DK"}},
	}

	var buf bytes.Buffer
	rep.PrintSummary(&buf)
	out := buf.String()
	assert.Contains(t, out, "Species: NHP")
	assert.Contains(t, out, "Total Streamlines: 1,234,567")
	assert.Contains(t, out, "Total Connections: 1,500")
	assert.Contains(t, out, "Connection Density: 0.430293")
	assert.Contains(t, out, "  - No connectome files found")
	assert.Contains(t, out, "Atlases Available: FreeSurfer_DK")
}
