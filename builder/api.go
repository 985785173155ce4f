// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — Build entry point, Constructor type and the symmetric edge helpers
// shared by all constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

const (
	methodBuild   = "Build"
	minBuildNodes = 1
	absentEdge    = 0.0
	methodCopy    = "Copy"
)

// Constructor mutates an n×n symmetric matrix in place using cfg.
// Constructors must keep the matrix symmetric with a zero diagonal.
type Constructor func(m *matrix.Dense, cfg builderConfig) error

// Build allocates an n×n zero matrix and applies cons in order, passing each
// the configuration assembled from opts.
//
// Errors:
//   - ErrTooFewVertices when n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "Build: ".
//
// Complexity: O(n²) allocation plus the constructors' own cost.
func Build(n int, cons []Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < minBuildNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBuild, n, minBuildNodes, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return m, nil
}

// Copy seeds the matrix with every off-diagonal entry of src, symmetrized by max.
// src must be square with the same order as the built matrix.
func Copy(src matrix.Matrix) Constructor {
	return func(m *matrix.Dense, _ builderConfig) error {
		sym, err := matrix.SymmetrizeMax(src)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCopy, err)
		}
		n := m.Rows()
		if sym.Rows() != n {
			return fmt.Errorf("%s: source order %d, want %d: %w", methodCopy, sym.Rows(), n, ErrConstructFailed)
		}
		matrix.ZeroDiagonal(sym)

		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				v, _ = sym.At(i, j) // in range: same order
				if v > absentEdge {
					if err = setEdge(m, i, j, v); err != nil {
						return fmt.Errorf("%s: %w", methodCopy, err)
					}
				}
			}
		}

		return nil
	}
}

// setEdge writes the undirected edge {i,j} with weight w (both triangles).
func setEdge(m *matrix.Dense, i, j int, w float64) error {
	if err := m.Set(i, j, w); err != nil {
		return err
	}

	return m.Set(j, i, w)
}

// hasEdge reports whether {i,j} is present.
func hasEdge(m *matrix.Dense, i, j int) bool {
	v, err := m.At(i, j)

	return err == nil && v > absentEdge
}

// edgeWeight draws a weight for a new edge from cfg.
func edgeWeight(cfg builderConfig) float64 {
	return cfg.weightFn(cfg.rng)
}
