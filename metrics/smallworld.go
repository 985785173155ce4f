// SPDX-License-Identifier: MIT
// Package: metrics
//
// smallworld.go — small-world index against randomized reference graphs.
//
// Canonical model:
//   • For each of cfg.trials trials, build a null-model graph with the real N
//     and edge count E, then measure its binary clustering and mean finite
//     path length. Trials with no reachable pair are discarded.
//   • rand_C, rand_L are the means over surviving trials.
//   • γ = C/rand_C, λ = L/rand_L, σ = γ/λ; each is 0 when its divisor is 0,
//     and all three are 0 when no trial survives. A null real path length
//     counts as 0.
//
// Null models (explicit, see NullModel):
//   • uniform: E edges on uniformly random pairs, attempt budget 10·E, an
//     early stop with fewer edges is accepted.
//   • degree-preserving: double-edge swaps on the real graph.

package metrics

import (
	"math/rand"

	"github.com/katalvlaran/connectome/builder"
	"github.com/katalvlaran/connectome/matrix"
)

// smallWorld holds γ, λ and σ.
type smallWorld struct {
	gamma, lambda, sigma float64
}

// nullGraph draws one reference adjacency for g.
func nullGraph(g *graph, kind NullModel, rng *rand.Rand) (*matrix.Dense, error) {
	if kind == NullModelDegreePreserving {
		return builder.Rewire(g.adj, defaultSwapsPerEdge, rng)
	}

	return builder.Build(g.n, []builder.Constructor{builder.RandomEdges(g.edges)}, builder.WithRand(rng))
}

// computeSmallWorld compares the real clustering and path length against
// cfg.trials null models drawn from rng.
func computeSmallWorld(g *graph, realC float64, realL *float64, cfg config, rng *rand.Rand) (smallWorld, error) {
	var sumC, sumL float64
	survivors := 0
	for t := 0; t < cfg.trials; t++ {
		adj, err := nullGraph(g, cfg.nullModel, rng)
		if err != nil {
			return smallWorld{}, err
		}
		ref, err := newGraph(adj)
		if err != nil {
			return smallWorld{}, err
		}
		ps, err := shortestPaths(ref.adj)
		if err != nil {
			return smallWorld{}, err
		}
		if ps.reachable == 0 {
			continue
		}
		sumC += meanOf(binaryClustering(ref))
		sumL += ps.meanLength
		survivors++
	}
	if survivors == 0 {
		return smallWorld{}, nil
	}

	randC := sumC / float64(survivors)
	randL := sumL / float64(survivors)
	L := 0.0
	if realL != nil {
		L = *realL
	}

	var sw smallWorld
	if randC != 0 {
		sw.gamma = realC / randC
	}
	if randL != 0 {
		sw.lambda = L / randL
	}
	if sw.lambda != 0 {
		sw.sigma = sw.gamma / sw.lambda
	}

	return sw, nil
}
