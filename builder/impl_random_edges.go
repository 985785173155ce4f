// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_edges.go — uniform random edge placement.
//
// Canonical model:
//   • Repeatedly draw an unordered pair (i,j), i≠j, uniformly at random and add
//     the undirected edge if absent, until e new edges are placed or the attempt
//     budget attemptFactor·e is exhausted.
//   • Running out of budget is NOT an error: dense targets on small graphs
//     legitimately end with fewer than e edges.
//
// Contract:
//   • e ≥ 0 (else ErrBadSize); e=0 is a no-op.
//   • cfg.rng must be non-nil when e > 0 (else ErrNeedRandSource).
//   • Existing edges are kept; only new pairs count towards e.
//
// Determinism:
//   • Fixed draw order (i then j) per attempt; same seed → same matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	methodRandomEdges = "RandomEdges"
	attemptFactor     = 10
	minPairNodes      = 2
)

// RandomEdges returns a Constructor placing e new edges uniformly at random.
func RandomEdges(e int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if e < 0 {
			return fmt.Errorf("%s: e=%d < 0: %w", methodRandomEdges, e, ErrBadSize)
		}
		if e == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
		}
		n := m.Rows()
		if n < minPairNodes {
			return nil
		}

		placed, attempts := 0, 0
		budget := attemptFactor * e
		var i, j int
		for placed < e && attempts < budget {
			attempts++
			// Every attempt is a distinct pair: j skips over i.
			i = cfg.rng.Intn(n)
			j = cfg.rng.Intn(n - 1)
			if j >= i {
				j++
			}
			if hasEdge(m, i, j) {
				continue
			}
			if err := setEdge(m, i, j, edgeWeight(cfg)); err != nil {
				return fmt.Errorf("%s: edge %d—%d: %w", methodRandomEdges, i, j, err)
			}
			placed++
		}

		return nil
	}
}
