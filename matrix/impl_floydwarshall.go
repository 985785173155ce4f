// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Unit-cost distance initialization from a binarized adjacency.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import "math"

const (
	opFloydWarshall  = "FloydWarshall"
	opUnitDistances  = "UnitDistances"
	unitEdgeDistance = 1.0
)

// UnitDistances converts a binary adjacency into the initial unit-cost distance
// matrix: dist[i,i]=0, dist[i,j]=1 when adj[i,j]>0, +Inf otherwise.
//
// The returned matrix allows +Inf (see NewDistance).
// Complexity: O(n²).
func UnitDistances(adj Matrix) (*Dense, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opUnitDistances, err)
	}
	n := adj.Rows()
	dist, err := NewDistance(n)
	if err != nil {
		return nil, matrixErrorf(opUnitDistances, err)
	}

	var i, j int
	var v float64
	if a, ok := adj.(*Dense); ok {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i != j && a.data[i*n+j] > 0 {
					dist.data[i*n+j] = unitEdgeDistance
				}
			}
		}
		return dist, nil
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = adj.At(i, j); err != nil {
				return nil, matrixErrorf(opUnitDistances, err)
			}
			if v > 0 {
				dist.data[i*n+j] = unitEdgeDistance
			}
		}
	}

	return dist, nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k: no improvement via k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)
		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}
