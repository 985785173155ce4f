// Package metrics computes topological descriptors of a structural
// connectivity matrix (a connectome): connection density, node strength and
// degree statistics, binary and weighted clustering, shortest-path based
// global and local efficiency, small-worldness against randomized null
// models, degree assortativity and basic component structure.
//
// The only entry point is Compute:
//
//	rec, err := metrics.Compute(m, metrics.WithSeed(42))
//	if err != nil { ... }            // errors.Is(err, metrics.ErrInvalidMatrix)
//	ge, ok := rec.Get(metrics.FieldGlobalEfficiency)
//
// Pipeline:
//
//  1. Validate: non-nil, square, N ≥ 1, finite, non-negative. Any violation
//     fails fast with ErrInvalidMatrix wrapping the matrix sentinel; no partial
//     record is ever returned.
//  2. Prepare: symmetrize by element-wise max with the transpose, drop the
//     diagonal, and zero weights at or below the threshold (default 0).
//  3. Analyze: node statistics, clustering, path efficiency, components,
//     small-world index and assortativity, each a pure function of the
//     prepared graph.
//  4. Merge: one flat Record, rounded per field precision (counts as
//     integers, weight-scale fields to 3 decimals, ratios to 6).
//
// Degenerate graphs (isolated nodes, N < 2, no edges, disconnected parts) are
// not errors: every field resolves to its documented fallback (0 or null).
//
// Randomness is confined to the small-world null models. Every Compute call
// owns its *rand.Rand (seeded deterministically, seed 0 → a fixed default), so
// concurrent calls on different matrices are safe. Callers that batch many
// matrices derive one seed per task with DeriveSeed.
//
// Complexity: O(N³) for all-pairs shortest paths, repeated once per null-model
// trial, plus O(Σ d_i³) for the neighborhood subgraphs.
package metrics
