// SPDX-License-Identifier: MIT
// Package: builder
//
// rewire.go — degree-preserving randomization by double-edge swaps.
//
// Canonical model:
//   • Pick two distinct edges {a,b} and {c,d} uniformly; with probability ½ flip
//     the second to {d,c}. Replace them by {a,d} and {c,b} when the four
//     endpoints are distinct and neither new edge exists.
//   • Target swaps = swapsPerEdge·E; attempts are capped at attemptFactor·target.
//   • Each moved edge carries its weight, so strengths are permuted while every
//     node degree is kept exactly.
//
// Contract:
//   • adj must be square with a zero diagonal; it is symmetrized by max and never
//     mutated.
//   • swapsPerEdge ≥ 0 (else ErrBadSize); rng non-nil (else ErrNeedRandSource).
//   • Graphs with fewer than 2 edges are returned unchanged (as a copy).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	methodRewire = "Rewire"
	minSwapEdges = 2
	flipChance   = 0.5
)

// edge is one undirected edge i<j with its weight.
type edge struct {
	i, j int
	w    float64
}

// Rewire returns a degree-preserving randomization of adj.
//
// Complexity: O(n²) to list edges plus O(swapsPerEdge·E) expected swaps.
func Rewire(adj matrix.Matrix, swapsPerEdge int, rng *rand.Rand) (*matrix.Dense, error) {
	if swapsPerEdge < 0 {
		return nil, fmt.Errorf("%s: swapsPerEdge=%d < 0: %w", methodRewire, swapsPerEdge, ErrBadSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRewire, ErrNeedRandSource)
	}
	out, err := matrix.SymmetrizeMax(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRewire, err)
	}
	matrix.ZeroDiagonal(out)

	edges := listEdges(out)
	if len(edges) < minSwapEdges {
		return out, nil
	}

	target := swapsPerEdge * len(edges)
	budget := attemptFactor * target
	done := 0
	var x, y, a, b, c, d int
	for attempt := 0; done < target && attempt < budget; attempt++ {
		x = rng.Intn(len(edges))
		y = rng.Intn(len(edges))
		if x == y {
			continue
		}
		a, b = edges[x].i, edges[x].j
		c, d = edges[y].i, edges[y].j
		if rng.Float64() < flipChance {
			c, d = d, c
		}
		if a == c || a == d || b == c || b == d {
			continue
		}
		if hasEdge(out, a, d) || hasEdge(out, c, b) {
			continue
		}

		// {a,b},{c,d} → {a,d},{c,b}
		if err = moveEdge(out, a, b, a, d, edges[x].w); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRewire, err)
		}
		if err = moveEdge(out, c, d, c, b, edges[y].w); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRewire, err)
		}
		edges[x] = newEdge(a, d, edges[x].w)
		edges[y] = newEdge(c, b, edges[y].w)
		done++
	}

	return out, nil
}

// listEdges collects the upper-triangle edges of a symmetric matrix in
// lexicographic order.
func listEdges(m *matrix.Dense) []edge {
	n := m.Rows()
	edges := make([]edge, 0, n)
	var i, j int
	var row []float64
	for i = 0; i < n; i++ {
		row = m.RawRow(i)
		for j = i + 1; j < n; j++ {
			if row[j] > absentEdge {
				edges = append(edges, edge{i: i, j: j, w: row[j]})
			}
		}
	}

	return edges
}

// moveEdge clears {fi,fj} and writes {ti,tj} with weight w.
func moveEdge(m *matrix.Dense, fi, fj, ti, tj int, w float64) error {
	if err := setEdge(m, fi, fj, absentEdge); err != nil {
		return err
	}

	return setEdge(m, ti, tj, w)
}

func newEdge(i, j int, w float64) edge {
	if i > j {
		i, j = j, i
	}

	return edge{i: i, j: j, w: w}
}
