// SPDX-License-Identifier: MIT
// Package: metrics
//
// rng.go — deterministic random streams for the null models.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Compute never shares one between
//     calls; batch callers derive per-task seeds with DeriveSeed.

package metrics

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into an independent
// 64-bit seed (SplitMix64 finalizer). Small input changes give large,
// well-distributed output changes, so consecutive stream ids do not correlate.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
