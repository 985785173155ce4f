// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for builder constructors.
//
// Contract:
//   • Constructors return these sentinels wrapped with "%s: ...: %w" context.
//   • Callers match with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates the matrix is too small for the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates an out-of-domain size parameter (lattice k, edge count).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates a stochastic constructor was used without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil constructor, bad source).
var ErrConstructFailed = errors.New("builder: construction failed")
