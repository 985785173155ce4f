// SPDX-License-Identifier: MIT
// Package: metrics
//
// basic.go — connectivity summary over the upper triangle.

package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// basicMetrics writes n_nodes, totals, density/sparsity and the statistics of
// the non-zero connection weights (0 when there are none).
func basicMetrics(g *graph, rec Record) {
	n := g.n
	present := make([]float64, 0, g.edges)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v = g.weight(i, j); v > 0 {
				present = append(present, v)
			}
		}
	}

	density := 0.0
	if possible := n * (n - 1) / 2; possible > 0 {
		density = float64(len(present)) / float64(possible)
	}

	rec.set(FieldNodes, float64(n))
	rec.set(FieldTotalStreamlines, floats.Sum(present))
	rec.set(FieldTotalConnections, float64(len(present)))
	rec.set(FieldConnectionDensity, density)
	rec.set(FieldSparsity, 1-density)

	if len(present) == 0 {
		rec.set(FieldMeanConnectionStrength, 0)
		rec.set(FieldStdConnectionStrength, 0)
		rec.set(FieldMaxConnectionStrength, 0)
		return
	}
	mean, std := popMeanStd(present)
	rec.set(FieldMeanConnectionStrength, mean)
	rec.set(FieldStdConnectionStrength, std)
	rec.set(FieldMaxConnectionStrength, floats.Max(present))
}

// popMeanStd is the population mean and standard deviation; (0,0) for empty
// input. Rounding noise that drives the variance below zero clamps to 0.
func popMeanStd(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return mean, std
}
