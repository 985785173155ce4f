// SPDX-License-Identifier: MIT
// Package metrics_test contains test helpers and fixtures.

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectome/builder"
	"github.com/katalvlaran/connectome/matrix"
	"github.com/katalvlaran/connectome/metrics"
)

const tol = 1e-9

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustBuild runs builder.Build or fails the test.
func mustBuild(t testing.TB, n int, seed int64, cons ...builder.Constructor) *matrix.Dense {
	t.Helper()
	m, err := builder.Build(n, cons, builder.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// mustCompute runs Compute or fails the test.
func mustCompute(t testing.TB, m matrix.Matrix, opts ...metrics.Option) metrics.Record {
	t.Helper()
	rec, err := metrics.Compute(m, opts...)
	require.NoError(t, err)

	return rec
}

// value returns a non-null field or fails the test.
func value(t testing.TB, rec metrics.Record, name string) float64 {
	t.Helper()
	v, ok := rec.Get(name)
	require.True(t, ok, "field %s is null or missing", name)

	return v
}

func ring4() [][]float64 {
	return [][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	}
}

func triangle() [][]float64 {
	return [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
}

// pendantTriangle is the triangle 0-1-2 with node 3 hanging off node 0.
func pendantTriangle() [][]float64 {
	return [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
	}
}
