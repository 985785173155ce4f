// SPDX-License-Identifier: MIT
// Package: metrics
//
// compute.go — Compute, the single entry point of the engine.

package metrics

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

// Compute validates m, prepares its graph view and merges every analyzer
// into one Record holding exactly the names listed by Fields.
//
// Errors:
//   - ErrInvalidMatrix (wrapping matrix.ErrNilMatrix, ErrNonSquare,
//     ErrNaNInf or ErrNegativeEntry) for unusable input.
//
// Compute either returns a complete Record or an error; never both.
// It is safe for concurrent use on distinct inputs as long as callers do not
// share one *rand.Rand across calls via WithRand.
func Compute(m matrix.Matrix, opts ...Option) (Record, error) {
	cfg := newConfig(opts...)
	g, err := prepare(m, cfg.threshold)
	if err != nil {
		return nil, err
	}

	rec := make(Record, len(BasicFields)+len(GraphFields))
	basicMetrics(g, rec)

	stats, err := computeNodeStats(g)
	if err != nil {
		return nil, fmt.Errorf("%s: node statistics: %w", opCompute, err)
	}
	stats.record(rec)

	binC := meanOf(binaryClustering(g))
	wc, err := weightedClustering(g)
	if err != nil {
		return nil, fmt.Errorf("%s: weighted clustering: %w", opCompute, err)
	}
	rec.set(FieldBinaryClustering, binC)
	rec.set(FieldWeightedClustering, meanOf(wc))

	ps, err := shortestPaths(g.adj)
	if err != nil {
		return nil, fmt.Errorf("%s: shortest paths: %w", opCompute, err)
	}
	le, err := localEfficiency(g)
	if err != nil {
		return nil, fmt.Errorf("%s: local efficiency: %w", opCompute, err)
	}
	rec.setOpt(FieldCharacteristicPathLength, ps.charPathLength())
	rec.set(FieldGlobalEfficiency, ps.efficiency)
	rec.set(FieldGlobalEfficiencyApprox, approxEfficiency(meanOf(stats.degree), g.n))
	rec.set(FieldLocalEfficiency, meanOf(le))
	rec.setOpt(FieldDiameter, ps.diam())

	count, largest := components(g)
	rec.set(FieldComponents, float64(count))
	rec.set(FieldLargestComponent, float64(largest))

	sw, err := computeSmallWorld(g, binC, ps.charPathLength(), cfg, cfg.random())
	if err != nil {
		return nil, fmt.Errorf("%s: small world: %w", opCompute, err)
	}
	rec.set(FieldNormalizedClustering, sw.gamma)
	rec.set(FieldNormalizedPathLength, sw.lambda)
	rec.set(FieldSmallWorldness, sw.sigma)

	rec.set(FieldAssortativity, assortativity(g))

	return rec, nil
}
