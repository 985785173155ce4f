// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/numeric/symmetry checks here.
//  - Return sentinel errors wrapped with the validator tag (and coordinates
//    where a specific cell is at fault) so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element scans run in fixed i→j order, so the first reported cell is stable.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → ...).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an underlying error with the validator tag and the cell at fault.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: entry (%d,%d)=%g: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil or m is a nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: shape %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Assumes m is non-nil. Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scan(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative rejects entries < 0.
// Assumes m is non-nil. Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scan(m, "ValidateNonNegative", func(v float64) error {
		if v < 0 {
			return ErrNegativeEntry
		}
		return nil
	})
}

// ValidateConnectivity is the composite contract for connectivity matrices:
// NotNil → Square (N ≥ 1) → Finite → NonNegative.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrNaNInf, ErrNegativeEntry.
func ValidateConnectivity(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateConnectivity", err)
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateConnectivity", ErrInvalidDimensions)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateConnectivity", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateConnectivity", err)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// tolerance, ErrAsymmetry on the first violating pair.
// Complexity: O(n²) over the strict upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // indices are in range after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return cellErrorf("ValidateSymmetric", i, j, aij, ErrAsymmetry)
			}
		}
	}

	return nil
}

// scan applies check to every element in row-major order and reports the first failure.
func scan(m Matrix, tag string, check func(v float64) error) error {
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if err := check(d.data[base+j]); err != nil {
					return cellErrorf(tag, i, j, d.data[base+j], err)
				}
			}
		}
		return nil
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return cellErrorf(tag, i, j, v, err)
			}
		}
	}

	return nil
}
