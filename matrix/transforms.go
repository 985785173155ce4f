// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Connectivity-specific transforms used before graph analysis:
//     max-symmetrization, thresholded binarization, diagonal removal, weight
//     normalization, row sums and neighbor lists.
//
// Determinism & Performance:
//   - Every transform returns a fresh *Dense (inputs are never mutated) except
//     ZeroDiagonal, which is documented as in-place.
//   - Fixed i→j traversal; O(n²) for all transforms.

package matrix

const (
	opSymmetrizeMax = "SymmetrizeMax"
	opBinarize      = "Binarize"
	opScaleByMax    = "ScaleByMax"
	opRowSums       = "RowSums"
	opDenseOf       = "DenseOf"
)

// DenseOf returns a *Dense copy of any Matrix. *Dense inputs are cloned directly.
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
		}
	}

	return out, nil
}

// SymmetrizeMax returns S with S[i,j] = max(M[i,j], M[j,i]).
// The operation is idempotent: SymmetrizeMax(SymmetrizeMax(M)) == SymmetrizeMax(M).
//
// Errors: ErrNilMatrix, ErrNonSquare.
func SymmetrizeMax(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrizeMax, err)
	}
	s, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrizeMax, err)
	}

	n := s.r
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = s.data[i*n+j], s.data[j*n+i]
			if b > a {
				a = b
			}
			s.data[i*n+j] = a
			s.data[j*n+i] = a
		}
	}

	return s, nil
}

// Binarize returns B with B[i,j] = 1 when M[i,j] > threshold (i≠j), else 0.
// The diagonal of B is always 0: a node is never its own neighbor.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Binarize(m Matrix, threshold float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opBinarize, err)
	}
	src, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opBinarize, err)
	}

	n := src.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && src.data[i*n+j] > threshold {
				src.data[i*n+j] = 1
			} else {
				src.data[i*n+j] = 0
			}
		}
	}

	return src, nil
}

// ZeroDiagonal clears the diagonal of d in place and reports how many
// diagonal entries were non-zero before clearing.
func ZeroDiagonal(d *Dense) int {
	n := d.r
	if d.c < n {
		n = d.c
	}
	cleared := 0
	var i int
	for i = 0; i < n; i++ {
		if d.data[i*d.c+i] != 0 {
			d.data[i*d.c+i] = 0
			cleared++
		}
	}

	return cleared
}

// MaxValue returns the largest element of d (d has at least one element).
func MaxValue(d *Dense) float64 {
	if len(d.data) == 0 {
		return 0
	}
	best := d.data[0]
	for _, v := range d.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// ScaleByMax returns a copy of d with every element divided by the global
// maximum, mapping non-negative weights into [0,1]. An all-zero (or
// non-positive maximum) matrix is returned as an unchanged copy.
func ScaleByMax(d *Dense) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opScaleByMax, ErrNilMatrix)
	}
	out := d.clone()
	mx := MaxValue(d)
	if mx <= 0 {
		return out, nil
	}
	inv := 1.0 / mx
	for k := range out.data {
		out.data[k] *= inv
	}

	return out, nil
}

// RowSums returns r[i] = Σ_j d[i,j].
func RowSums(d *Dense) ([]float64, error) {
	if d == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	sums := make([]float64, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sums[i] += d.data[base+j]
		}
	}

	return sums, nil
}

// Neighbors returns, in ascending order, the columns j ≠ i with d[i,j] > 0.
// Returns nil for an out-of-range row.
func (m *Dense) Neighbors(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}
	var out []int
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if j != i && m.data[base+j] > 0 {
			out = append(out, j)
		}
	}

	return out
}

// CountUpper returns the number of strictly-upper-triangle entries with value > 0.
// On a symmetric binarized adjacency this is the undirected edge count.
// Non-square input counts 0.
func CountUpper(d *Dense) int {
	n := d.r
	if d.c != n {
		return 0
	}
	count := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] > 0 {
				count++
			}
		}
	}

	return count
}
