// SPDX-License-Identifier: MIT
// Package: metrics
//
// topology.go — degree assortativity.

package metrics

const minAssortativityEdges = 2

// assortativity is the Pearson correlation of (deg(i), deg(j)) over edges
// i<j, one pair per edge. Fewer than 2 edges or a constant degree sequence
// (regular graph) yields 0.
func assortativity(g *graph) float64 {
	src := make([]float64, 0, g.edges)
	dst := make([]float64, 0, g.edges)
	for i := 0; i < g.n; i++ {
		for _, j := range g.nbrs[i] {
			if j > i {
				src = append(src, float64(g.degree(i)))
				dst = append(dst, float64(g.degree(j)))
			}
		}
	}

	return pearson(src, dst, minAssortativityEdges)
}
