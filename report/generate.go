// SPDX-License-Identifier: MIT
// Package: report
//
// generate.go — parallel analysis of every discovered connectome.

package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/connectome/internal/logging"
	"github.com/katalvlaran/connectome/loader"
	"github.com/katalvlaran/connectome/metrics"
)

// DefaultAtlases are the parcellations the pipeline produces.
var DefaultAtlases = []string{"Brainnetome", "FreeSurfer_DK", "FreeSurfer_Destrieux"}

const defaultWorkers = 4

// Generator produces a Report for one subject. The zero value of every
// optional field selects a default.
type Generator struct {
	Subject           string
	Dir               string
	Species           string   // "human" (default) or "nhp"
	FreeSurferVersion string   // "none" when empty
	Atlases           []string // DefaultAtlases when empty
	Workers           int      // parallel connectomes; 4 when < 1

	// Metrics knobs. Each connectome i is analyzed with seed DeriveSeed(Seed, i).
	Seed         int64
	RandomTrials int
	Threshold    float64
	NullModel    metrics.NullModel

	LoaderOptions []loader.Option
	Logger        *slog.Logger
	Now           func() time.Time
}

// analysis is the outcome for one source.
type analysis struct {
	conn    Connectome
	ok      bool
	warning string
}

// Generate discovers, analyzes and summarizes. Per-connectome failures become
// warnings; only invalid generator input or ctx cancellation return an error.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if g.Subject == "" {
		return nil, ErrNoSubject
	}
	if err := metrics.ValidateThreshold(g.Threshold); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if err := g.NullModel.Validate(); err != nil {
		return nil, fmt.Errorf("report: null model: %w", err)
	}
	log := logging.OrDefault(g.Logger).With("subject", g.Subject)
	species := g.Species
	if species == "" {
		species = "human"
	}
	fsVersion := g.FreeSurferVersion
	if fsVersion == "" {
		fsVersion = "none"
	}
	atlases := g.Atlases
	if len(atlases) == 0 {
		atlases = DefaultAtlases
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	sources, err := Discover(g.Dir, atlases)
	if err != nil {
		return nil, err
	}
	log.Info("generating standardized report", "species", species, "connectomes", len(sources))

	rep := &Report{
		ReportID:          uuid.NewString(),
		SubjectID:         g.Subject,
		Species:           species,
		ProcessingDate:    now().UTC(),
		PipelineVersion:   PipelineVersion,
		FreeSurferVersion: fsVersion,
		Connectomes:       make(map[string]Connectome, len(sources)),
		Warnings:          []string{},
	}
	if len(sources) == 0 {
		rep.Warnings = append(rep.Warnings, "No connectome files found")
		log.Warn("no connectome files found", "dir", g.Dir)
	}

	results, err := g.analyzeAll(ctx, sources, log)
	if err != nil {
		return nil, err
	}
	for i, res := range results {
		if !res.ok {
			rep.Warnings = append(rep.Warnings, res.warning)
			continue
		}
		rep.Connectomes[sources[i].Name] = res.conn
	}

	quality, warnings := checkQuality(g.Dir, species, fsVersion)
	rep.Quality = quality
	rep.Warnings = append(rep.Warnings, warnings...)

	params := defaultParameters(species)
	params.Seed = g.Seed
	params.RandomTrials = g.trials()
	params.NullModel = g.NullModel.String()
	params.Threshold = g.Threshold
	rep.Summary = summarize(sources, atlases, params)

	return rep, nil
}

func (g *Generator) trials() int {
	if g.RandomTrials < 1 {
		return metrics.DefaultRandomTrials
	}

	return g.RandomTrials
}

// analyzeAll runs analyze for every source with at most g.Workers in flight.
// Results keep the source order.
func (g *Generator) analyzeAll(ctx context.Context, sources []Source, log *slog.Logger) ([]analysis, error) {
	workers := g.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	results := make([]analysis, len(sources))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = g.analyze(src, metrics.DeriveSeed(g.Seed, uint64(i)), log)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	return results, nil
}

// analyze loads and computes one connectome.
func (g *Generator) analyze(src Source, seed int64, log *slog.Logger) analysis {
	log = log.With("connectome", src.Name)
	log.Info("analyzing connectome")

	m, err := loader.Load(src.Path, g.LoaderOptions...)
	if err != nil {
		log.Error("failed to load connectome", "err", err)
		return analysis{warning: fmt.Sprintf("Failed to load connectome: %s", src.Name)}
	}
	rec, err := metrics.Compute(m,
		metrics.WithSeed(seed),
		metrics.WithRandomTrials(g.trials()),
		metrics.WithThreshold(g.Threshold),
		metrics.WithNullModel(g.NullModel),
	)
	if err != nil {
		log.Error("failed to analyze connectome", "err", err)
		return analysis{warning: fmt.Sprintf("Failed to analyze connectome: %s", src.Name)}
	}

	return analysis{
		ok: true,
		conn: Connectome{
			Filepath:     src.Path,
			Atlas:        src.Atlas,
			Kind:         src.Kind,
			BasicMetrics: rec.Subset(metrics.BasicFields...),
			GraphMetrics: rec.Subset(metrics.GraphFields...),
		},
	}
}
