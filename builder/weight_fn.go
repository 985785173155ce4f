// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go — edge-weight generators.
//
// Contract:
//   • WeightFn receives the (possibly nil) RNG and returns a non-negative weight.
//   • Generator constructors panic on meaningless parameters (programmer error).

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight emitted by DefaultWeightFn (a binary edge).
const DefaultEdgeWeight float64 = 1

// WeightFn produces one edge weight per call.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a generator that always yields value (value > 0).
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a generator drawing from U[min,max] with 0 < min ≤ max.
// A nil RNG yields min, keeping unseeded builds deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
