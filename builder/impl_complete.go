// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — implementation of the Complete constructor.
//
// Contract:
//   • Connects every unordered pair i<j exactly once; n=1 yields no edges.
//   • Pairs are visited in lexicographic (i,j) order so weights drawn from a
//     seeded RNG are reproducible.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := setEdge(m, i, j, edgeWeight(cfg)); err != nil {
					return fmt.Errorf("%s: edge %d—%d: %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
