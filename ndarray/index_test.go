// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/ndarray"
)

func TestGet_1D(t *testing.T) {
	a := mustNew(t, []float64{10, 11, 12, 13, 14, 15})

	cases := []struct {
		name string
		key  ndarray.Key
		want []float64
	}{
		{"all", ndarray.All(), []float64{10, 11, 12, 13, 14, 15}},
		{"range", ndarray.Slice(1, 4, 1), []float64{11, 12, 13}},
		{"step keeps partial stride", ndarray.Slice(0, 5, 2), []float64{10, 12, 14}},
		{"open stop", ndarray.SliceFrom(3, 1), []float64{13, 14, 15}},
		{"negative bounds", ndarray.Slice(-3, -1, 1), []float64{13, 14}},
		{"stop clamps", ndarray.Slice(4, 100, 1), []float64{14, 15}},
		{"start clamps", ndarray.Slice(-100, 2, 1), []float64{10, 11}},
		{"empty", ndarray.Slice(4, 2, 1), []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := mustGet(t, a, tc.key)
			require.False(t, it.IsScalar())
			assert.Equal(t, tc.want, it.Array().ToList())
		})
	}

	it := mustGet(t, a, ndarray.Index(-1))
	require.True(t, it.IsScalar())
	assert.Nil(t, it.Array())
	assert.Equal(t, complex128(15), it.Scalar())
}

func TestGet_2D(t *testing.T) {
	m := ramp(t, 3, 4) // [[0 1 2 3] [4 5 6 7] [8 9 10 11]]

	t.Run("scalar", func(t *testing.T) {
		it := mustGet(t, m, ndarray.Index(1), ndarray.Index(2))
		require.True(t, it.IsScalar())
		assert.Equal(t, complex128(6), it.Scalar())
	})
	t.Run("row", func(t *testing.T) {
		it := mustGet(t, m, ndarray.Index(2), ndarray.All())
		assert.Equal(t, ndarray.Shape{4}, it.Array().Shape())
		assert.Equal(t, []float64{8, 9, 10, 11}, it.Array().ToList())
	})
	t.Run("column", func(t *testing.T) {
		it := mustGet(t, m, ndarray.All(), ndarray.Index(-1))
		assert.Equal(t, []float64{3, 7, 11}, it.Array().ToList())
	})
	t.Run("block", func(t *testing.T) {
		it := mustGet(t, m, ndarray.Slice(0, 3, 2), ndarray.Slice(1, 4, 2))
		assert.Equal(t, ndarray.Shape{2, 2}, it.Array().Shape())
		assert.Equal(t, [][]float64{{1, 3}, {9, 11}}, it.Array().ToList())
	})
	t.Run("copy not view", func(t *testing.T) {
		it := mustGet(t, m, ndarray.Index(0), ndarray.All())
		require.NoError(t, it.Array().SetAt(100, 0))
		v, err := m.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, complex128(0), v)
	})
}

func TestGet_Errors(t *testing.T) {
	m := ramp(t, 2, 2)

	_, err := m.Get(ndarray.Index(0))
	require.ErrorIs(t, err, ndarray.ErrKeyArity)

	_, err = m.Get(ndarray.Index(2), ndarray.Index(0))
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = m.Get(ndarray.Index(0), ndarray.Index(-3))
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = m.Get(ndarray.Slice(0, 2, 0), ndarray.All())
	require.ErrorIs(t, err, ndarray.ErrBadSlice)

	_, err = m.At(0, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrKeyArity)
}

func TestSetScalar(t *testing.T) {
	m := ramp(t, 3, 3)
	require.NoError(t, m.SetScalar(-1, ndarray.Index(1), ndarray.All()))
	require.NoError(t, m.SetScalar(7, ndarray.Index(0), ndarray.Index(0)))
	assert.Equal(t, [][]float64{{7, 1, 2}, {-1, -1, -1}, {6, 7, 8}}, m.ToList())

	// Real storage drops the imaginary part.
	require.NoError(t, m.SetAt(3+4i, 2, 2))
	v, err := m.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, complex128(3), v)

	c := mustNew(t, []float64{0, 0}, c128)
	require.NoError(t, c.SetAt(3+4i, 1))
	assert.Equal(t, []complex128{0, 3 + 4i}, c.ToList())

	require.ErrorIs(t, m.SetScalar(1, ndarray.Index(5), ndarray.Index(0)), ndarray.ErrOutOfRange)
}

func TestSetArray(t *testing.T) {
	m := ramp(t, 3, 3)
	col := mustNew(t, []float64{-1, -2, -3})
	require.NoError(t, m.SetArray(col, ndarray.All(), ndarray.Index(1)))
	assert.Equal(t, [][]float64{{0, -1, 2}, {3, -2, 5}, {6, -3, 8}}, m.ToList())

	block := mustNew(t, [][]float64{{10, 20}, {30, 40}})
	require.NoError(t, m.SetArray(block, ndarray.Slice(1, 3, 1), ndarray.Slice(0, 3, 2)))
	assert.Equal(t, [][]float64{{0, -1, 2}, {10, -2, 20}, {30, -3, 40}}, m.ToList())

	err := m.SetArray(col, ndarray.Index(0), ndarray.Index(0))
	require.ErrorIs(t, err, ndarray.ErrScalarSelection)

	err = m.SetArray(mustNew(t, []float64{1, 2}), ndarray.Index(0), ndarray.All())
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	err = m.SetArray(nil, ndarray.All(), ndarray.All())
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "3", ndarray.Index(3).String())
	assert.Equal(t, "1:5:2", ndarray.Slice(1, 5, 2).String())
	assert.Equal(t, "0::1", ndarray.All().String())
	assert.True(t, ndarray.All().IsSlice())
	assert.False(t, ndarray.Index(0).IsSlice())
}
