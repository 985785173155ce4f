// SPDX-License-Identifier: MIT
// Package: metrics
//
// prepare.go — validation and the shared graph view every analyzer reads.
//
// Invariants of a graph value:
//   • weights is symmetric, hollow, and holds only weights > threshold.
//   • adj is the 0/1 binarization of weights.
//   • nbrs[i] lists the neighbors of i in ascending order.
// Analyzers never mutate a graph.

package metrics

import (
	"github.com/katalvlaran/connectome/matrix"
)

const opCompute = "Compute"

// graph is the prepared, read-only view of one connectome.
type graph struct {
	n       int
	weights *matrix.Dense
	adj     *matrix.Dense
	nbrs    [][]int
	edges   int
}

// prepare validates m and builds its graph view.
func prepare(m matrix.Matrix, threshold float64) (*graph, error) {
	if err := matrix.ValidateConnectivity(m); err != nil {
		return nil, invalidf(opCompute, err)
	}
	w, err := matrix.SymmetrizeMax(m)
	if err != nil {
		return nil, invalidf(opCompute, err)
	}
	matrix.ZeroDiagonal(w)
	if threshold > 0 {
		// Apply only fails on non-finite results; zeroing cannot produce one.
		_ = w.Apply(func(_, _ int, v float64) float64 {
			if v <= threshold {
				return 0
			}
			return v
		})
	}

	return newGraph(w)
}

// newGraph derives adjacency and neighbor lists from a symmetric hollow
// weight matrix. Null-model graphs enter here directly.
func newGraph(w *matrix.Dense) (*graph, error) {
	adj, err := matrix.Binarize(w, 0)
	if err != nil {
		return nil, invalidf(opCompute, err)
	}
	n := w.Rows()
	g := &graph{
		n:       n,
		weights: w,
		adj:     adj,
		nbrs:    make([][]int, n),
		edges:   matrix.CountUpper(adj),
	}
	for i := 0; i < n; i++ {
		g.nbrs[i] = adj.Neighbors(i)
	}

	return g, nil
}

// degree returns |N(i)|.
func (g *graph) degree(i int) int {
	return len(g.nbrs[i])
}

// weight returns w[i,j]; indices are always in range for callers in this package.
func (g *graph) weight(i, j int) float64 {
	v, _ := g.weights.At(i, j)

	return v
}
