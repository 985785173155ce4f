// SPDX-License-Identifier: MIT
// Package: metrics
//
// clustering.go — binary and weighted (Onnela) clustering coefficients.
//
// Contract:
//   • Nodes with fewer than 2 neighbors score 0.
//   • Network values are means over ALL nodes, isolated ones included.
//
// Complexity: O(Σ d_i²) per coefficient.

package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/connectome/matrix"
)

const minNeighbors = 2

// binaryClustering returns the per-node fraction of neighbor pairs that are
// themselves connected.
func binaryClustering(g *graph) []float64 {
	out := make([]float64, g.n)
	adj := g.adj
	var i, a, b, k, links int
	var nb []int
	for i = 0; i < g.n; i++ {
		nb = g.nbrs[i]
		k = len(nb)
		if k < minNeighbors {
			continue
		}
		links = 0
		for a = 0; a < k; a++ {
			for b = a + 1; b < k; b++ {
				if v, _ := adj.At(nb[a], nb[b]); v > 0 {
					links++
				}
			}
		}
		out[i] = float64(links) / float64(k*(k-1)/2)
	}

	return out
}

// weightedClustering is the Onnela coefficient on weights normalized by the
// global maximum. For every ordered pair (j,h) of distinct neighbors of i:
//
//	num += (ŵ_ij·ŵ_ih·ŵ_jh)^(1/3),  den += ŵ_ij·ŵ_ih
//
// and the node value is num/den (0 when den = 0).
func weightedClustering(g *graph) ([]float64, error) {
	scaled, err := matrix.ScaleByMax(g.weights)
	if err != nil {
		return nil, err
	}
	out := make([]float64, g.n)
	var i, a, b int
	var wij, wih, wjh, num, den float64
	var nb []int
	for i = 0; i < g.n; i++ {
		nb = g.nbrs[i]
		if len(nb) < minNeighbors {
			continue
		}
		num, den = 0, 0
		for a = range nb {
			wij, _ = scaled.At(i, nb[a])
			for b = range nb {
				if a == b {
					continue
				}
				wih, _ = scaled.At(i, nb[b])
				wjh, _ = scaled.At(nb[a], nb[b])
				num += math.Cbrt(wij * wih * wjh)
				den += wij * wih
			}
		}
		if den > 0 {
			out[i] = num / den
		}
	}

	return out, nil
}

// meanOf is the arithmetic mean, 0 for empty input.
func meanOf(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return stat.Mean(x, nil)
}
