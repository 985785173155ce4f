// SPDX-License-Identifier: MIT
package metrics_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/connectome/builder"
	"github.com/katalvlaran/connectome/metrics"
)

// A ring lattice with a few random chords keeps lattice-like clustering and
// gains near-random path lengths, so σ must exceed 1 under both null models.
func TestSmallWorld_LatticePlusChordsExceedsOne(t *testing.T) {
	t.Parallel()

	kinds := []metrics.NullModel{metrics.NullModelUniform, metrics.NullModelDegreePreserving}
	for _, kind := range kinds {
		for seed := int64(1); seed <= 8; seed++ {
			m := mustBuild(t, 40, seed, builder.SmallWorld(3, 10))
			rec := mustCompute(t, m, metrics.WithSeed(seed), metrics.WithNullModel(kind))

			assert.Greater(t, value(t, rec, metrics.FieldSmallWorldness), 1.0, "%v seed=%d", kind, seed)
			assert.Greater(t, value(t, rec, metrics.FieldNormalizedClustering), 1.0, "%v seed=%d", kind, seed)
		}
	}
}

func TestSmallWorld_DisconnectedRealGraph(t *testing.T) {
	t.Parallel()

	// No edges: every trial is discarded and all outputs fall back to 0.
	rec := mustCompute(t, mustRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}), metrics.WithRandomTrials(3))
	for _, name := range []string{
		metrics.FieldNormalizedClustering,
		metrics.FieldNormalizedPathLength,
		metrics.FieldSmallWorldness,
	} {
		assert.Zero(t, value(t, rec, name), name)
	}
}

func TestSmallWorld_WithRandIsHonored(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, 30, 2, builder.SmallWorld(2, 6))
	a := mustCompute(t, m, metrics.WithRand(rand.New(rand.NewSource(5))))
	b := mustCompute(t, m, metrics.WithRand(rand.New(rand.NewSource(5))))
	assert.Equal(t, *a[metrics.FieldSmallWorldness], *b[metrics.FieldSmallWorldness])
}
