// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_lattice.go — ring lattice and the lattice-plus-chords small-world graph.
//
// Contract:
//   • RingLattice(k): node i is joined to i±1..i±k (mod n); requires k ≥ 1 and
//     2k < n, giving exactly n·k edges and degree 2k everywhere.
//   • SmallWorld(k, extra): RingLattice(k) followed by RandomEdges(extra).

package builder

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	methodRingLattice = "RingLattice"
	methodSmallWorld  = "SmallWorld"
	minLatticeK       = 1
)

// RingLattice returns a Constructor for the regular ring lattice with k
// neighbors on each side.
func RingLattice(k int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if k < minLatticeK || 2*k >= n {
			return fmt.Errorf("%s: need 1 ≤ k and 2k < n, got k=%d n=%d: %w", methodRingLattice, k, n, ErrBadSize)
		}

		var i, step, j int
		for i = 0; i < n; i++ {
			for step = 1; step <= k; step++ {
				j = (i + step) % n
				if err := setEdge(m, i, j, edgeWeight(cfg)); err != nil {
					return fmt.Errorf("%s: edge %d—%d: %w", methodRingLattice, i, j, err)
				}
			}
		}

		return nil
	}
}

// SmallWorld returns a Constructor that lays a ring lattice and then adds
// extra random chords. High clustering from the lattice and short paths from
// the chords give σ well above 1.
func SmallWorld(k, extra int) Constructor {
	lattice := RingLattice(k)
	chords := RandomEdges(extra)

	return func(m *matrix.Dense, cfg builderConfig) error {
		if err := lattice(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodSmallWorld, err)
		}
		if err := chords(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodSmallWorld, err)
		}

		return nil
	}
}
