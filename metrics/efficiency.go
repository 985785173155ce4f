// SPDX-License-Identifier: MIT
// Package: metrics
//
// efficiency.go — shortest-path metrics on the unit-cost binarized graph.
//
// Contract:
//   • Distances come from Floyd–Warshall with +Inf for unreachable pairs.
//   • Averages run over ordered pairs (i,j), i≠j, with a finite distance.
//   • No reachable pair: characteristic path length and diameter are null,
//     global efficiency is 0.

package metrics

import (
	"math"

	"github.com/katalvlaran/connectome/matrix"
)

// pathStats summarizes one all-pairs distance matrix.
type pathStats struct {
	reachable  int
	meanLength float64 // valid when reachable > 0
	efficiency float64
	diameter   float64
}

// charPathLength returns the mean finite distance, or nil when nothing is reachable.
func (p pathStats) charPathLength() *float64 {
	if p.reachable == 0 {
		return nil
	}
	v := p.meanLength

	return &v
}

// diam returns the largest finite distance, or nil when nothing is reachable.
func (p pathStats) diam() *float64 {
	if p.reachable == 0 {
		return nil
	}
	v := p.diameter

	return &v
}

// shortestPaths runs unit-cost APSP over a 0/1 adjacency matrix.
func shortestPaths(adj matrix.Matrix) (pathStats, error) {
	dist, err := matrix.UnitDistances(adj)
	if err != nil {
		return pathStats{}, err
	}
	if err = matrix.FloydWarshall(dist); err != nil {
		return pathStats{}, err
	}

	return summarizeDistances(dist), nil
}

// summarizeDistances accumulates over finite, nonzero off-diagonal distances.
func summarizeDistances(dist *matrix.Dense) pathStats {
	var ps pathStats
	var sumLen, sumInv float64
	n := dist.Rows()
	var i, j int
	var d float64
	var row []float64
	for i = 0; i < n; i++ {
		row = dist.RawRow(i)
		for j = 0; j < n; j++ {
			d = row[j]
			if i == j || d == 0 || math.IsInf(d, 1) {
				continue
			}
			ps.reachable++
			sumLen += d
			sumInv += 1 / d
			if d > ps.diameter {
				ps.diameter = d
			}
		}
	}
	if ps.reachable > 0 {
		ps.meanLength = sumLen / float64(ps.reachable)
		ps.efficiency = sumInv / float64(ps.reachable)
	}

	return ps
}

// localEfficiency returns, per node, the efficiency of the subgraph induced
// on its neighbors (0 with fewer than 2 neighbors or no reachable pair).
func localEfficiency(g *graph) ([]float64, error) {
	out := make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		nb := g.nbrs[i]
		if len(nb) < minNeighbors {
			continue
		}
		sub, err := g.adj.Induced(nb, nb)
		if err != nil {
			return nil, err
		}
		ps, err := shortestPaths(sub)
		if err != nil {
			return nil, err
		}
		out[i] = ps.efficiency
	}

	return out, nil
}

// approxEfficiency is the legacy estimate mean_degree/(N−1), 0 when N = 1.
func approxEfficiency(meanDegree float64, n int) float64 {
	if n < 2 {
		return 0
	}

	return meanDegree / float64(n-1)
}
