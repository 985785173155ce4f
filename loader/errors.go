// SPDX-License-Identifier: MIT
// Package: loader
//
// errors.go — sentinel errors for matrix text files.

package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/connectome/matrix"
)

var (
	// ErrEmpty indicates a file without data lines.
	ErrEmpty = errors.New("loader: no matrix data")

	// ErrParse indicates a field that is not a finite number.
	ErrParse = errors.New("loader: invalid numeric field")

	// ErrRagged indicates rows with differing field counts.
	ErrRagged = errors.New("loader: ragged rows")

	// ErrNotSquare indicates a rectangular matrix; it matches matrix.ErrNonSquare.
	ErrNotSquare = fmt.Errorf("loader: matrix is not square: %w", matrix.ErrNonSquare)
)
