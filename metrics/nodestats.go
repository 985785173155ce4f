// SPDX-License-Identifier: MIT
// Package: metrics
//
// nodestats.go — per-node strength and degree aggregates.

package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/connectome/matrix"
)

const minCorrelationNodes = 2

// nodeStats holds the per-node vectors; only their aggregates reach the record.
type nodeStats struct {
	strength []float64
	degree   []float64
}

func computeNodeStats(g *graph) (nodeStats, error) {
	strength, err := matrix.RowSums(g.weights)
	if err != nil {
		return nodeStats{}, err
	}
	degree := make([]float64, g.n)
	for i := range degree {
		degree[i] = float64(g.degree(i))
	}

	return nodeStats{strength: strength, degree: degree}, nil
}

// record writes strength/degree aggregates and their Pearson correlation
// (0 when N < 2 or either vector is constant).
func (s nodeStats) record(rec Record) {
	meanS, stdS := popMeanStd(s.strength)
	meanD, stdD := popMeanStd(s.degree)

	rec.set(FieldMeanStrength, meanS)
	rec.set(FieldStdStrength, stdS)
	rec.set(FieldMaxStrength, floats.Max(s.strength))
	rec.set(FieldMeanDegree, meanD)
	rec.set(FieldStdDegree, stdD)
	rec.set(FieldMaxDegree, floats.Max(s.degree))
	rec.set(FieldStrengthDegreeCorrelation, pearson(s.strength, s.degree, minCorrelationNodes))
}

// pearson returns the correlation of x and y, or 0 when fewer than min samples
// exist or the correlation is undefined.
func pearson(x, y []float64, min int) float64 {
	if len(x) < min {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}
