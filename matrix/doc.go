// Package matrix offers the dense numeric storage and graph-matrix primitives
// that the connectome engine is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     NaN/Inf guard (relaxed for distance matrices via NewDistance).
//   - Validators for the connectivity-matrix contract: square, N ≥ 1, finite,
//     non-negative (ValidateConnectivity), plus symmetry checks.
//   - Transforms used before analysis: SymmetrizeMax, Binarize, ZeroDiagonal,
//     ScaleByMax, RowSums, Neighbors, Induced.
//   - FloydWarshall all-pairs shortest paths with UnitDistances initialization.
//
// Matrices are best for the small dense graphs produced by brain parcellations
// (tens to low hundreds of regions), where O(N²) memory and O(N³) APSP are fine.
package matrix
