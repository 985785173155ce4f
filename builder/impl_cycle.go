// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of the Ring constructor.
//
// Contract:
//   • order n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//   • Weight per edge: cfg.weightFn(cfg.rng).
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that wires the cycle C_n over all nodes.
func Ring() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		var i, j int
		for i = 0; i < n; i++ {
			j = (i + 1) % n
			if err := setEdge(m, i, j, edgeWeight(cfg)); err != nil {
				return fmt.Errorf("%s: edge %d—%d: %w", methodRing, i, j, err)
			}
		}

		return nil
	}
}
