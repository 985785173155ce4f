// Package builder provides "functional-options"-style constructors for
// synthetic connectivity matrices: deterministic topologies used as test
// fixtures and demo inputs, and the randomized null-model graphs that the
// small-world analysis compares real connectomes against.
//
// The package offers the following key components:
//
//   - Build(n, opts, cons...): allocates an n×n zero matrix and applies each
//     Constructor in order; constructors compose (lattice + random chords).
//   - Topologies: Ring, Complete, RingLattice(k).
//   - Randomized: RandomEdges(e) (uniform pair placement with an attempt budget),
//     RandomChords(extra) (same placement on top of existing edges), and
//     Rewire(swapsPerEdge) (degree-preserving double-edge swaps).
//   - Copy(src): seeds the matrix from an existing symmetric adjacency.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithWeightFn.
//     – WeightFn: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Every produced matrix is symmetric with a zero diagonal.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (sentinels wrapped with the constructor name)
//     for invalid build parameters.
//   - Determinism: fixed pair-trial order and seeded RNGs give identical
//     matrices for identical seeds.
//
// Concurrency: a *rand.Rand is not goroutine-safe; never share one between
// concurrent Build calls.
package builder
