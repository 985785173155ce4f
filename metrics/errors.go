// SPDX-License-Identifier: MIT
// Package: metrics
//
// errors.go — sentinel errors for the metrics engine.

package metrics

import (
	"errors"
	"fmt"
)

// ErrInvalidMatrix is returned by Compute when the input is not a valid
// connectivity matrix (nil, empty, non-square, non-finite or negative).
// The underlying matrix sentinel stays reachable through errors.Is.
var ErrInvalidMatrix = errors.New("metrics: invalid connectivity matrix")

// ErrInvalidOption marks an analysis setting Compute cannot run with
// (non-finite or negative threshold, unknown null model).
var ErrInvalidOption = errors.New("metrics: invalid option")

// invalidf tags err with op and ErrInvalidMatrix.
func invalidf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidMatrix, err)
}
