// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectome/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7.5)
	require.Equal(t, 7.5, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
}

func TestNewDistance_InitialState(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDistance(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := MustAt(t, d, i, j)
			if i == j {
				require.Zero(t, v)
			} else {
				require.True(t, math.IsInf(v, 1))
			}
		}
	}
	// Distance matrices accept +Inf writes.
	require.NoError(t, d.Set(0, 1, math.Inf(1)))
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustRows(t, ring4())
	c := m.Clone()
	MustSet(t, c, 0, 1, 9)
	require.Equal(t, 1.0, MustAt(t, m, 0, 1))
	require.Equal(t, 9.0, MustAt(t, c, 0, 1))
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	sub, err := m.Induced([]int{0, 2}, []int{0, 2})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 2}, {6, 8}}, sub)

	empty, err := m.Induced(nil, nil)
	require.NoError(t, err)
	require.Zero(t, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RawRowAndNeighbors(t *testing.T) {
	t.Parallel()

	m := MustRows(t, ring4())
	require.Equal(t, []float64{0, 1, 0, 1}, m.RawRow(0))
	require.Nil(t, m.RawRow(4))
	require.Equal(t, []int{1, 3}, m.Neighbors(0))
	require.Equal(t, []int{0, 2}, m.Neighbors(3))
}

func TestDense_DoApply(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var sum float64
	m.Do(func(_, _ int, v float64) bool { sum += v; return true })
	require.Equal(t, 10.0, sum)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return 2 * v }))
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, m)

	err := m.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
