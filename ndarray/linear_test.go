// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/ndarray"
)

func TestTranspose_Matrix(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 12}})
	want := [][]float64{{1, 4, 8}, {1, 5, 9}, {2, 6, 10}, {3, 7, 12}}

	got, err := ndarray.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4, 3}, got.Shape())
	if diff := cmp.Diff(want, got.ToList()); diff != "" {
		t.Fatalf("transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestTranspose_Involution(t *testing.T) {
	for _, d := range allDTypes {
		for _, shape := range [][2]int{{1, 1}, {2, 5}, {4, 4}, {7, 3}} {
			name := fmt.Sprintf("%s/%dx%d", d, shape[0], shape[1])
			t.Run(name, func(t *testing.T) {
				base := ramp(t, shape[0], shape[1])
				base.Apply(func(p int, v complex128) complex128 { return v + complex(0, float64(-p)) })
				a, err := base.AsType(d)
				require.NoError(t, err)

				tt := a.Transpose().Transpose()
				assert.True(t, ndarray.Equal(a, tt))
			})
		}
	}
}

func TestTranspose_ComplexLockstep(t *testing.T) {
	a := mustNew(t, [][]complex128{{1 + 1i, 2 + 2i}, {3 + 3i, 4 + 4i}}, c128)
	assert.Equal(t, [][]complex128{{1 + 1i, 3 + 3i}, {2 + 2i, 4 + 4i}}, a.Transpose().ToList())
}

func TestTranspose_1DCopies(t *testing.T) {
	v := mustNew(t, []float64{1, 2, 3})
	tv := v.Transpose()
	assert.True(t, ndarray.Equal(v, tv))
	require.NoError(t, tv.SetAt(0, 0))
	assert.Equal(t, []float64{1, 2, 3}, v.ToList())

	_, err := ndarray.Transpose(nil)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestMatMul(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
	b := mustNew(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {2, -1}})

	got, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, got.Shape())
	assert.Equal(t, [][]float64{{12, 1}, {28, 5}, {44, 9}}, got.ToList())
}

func TestMatMul_Identity(t *testing.T) {
	a := ramp(t, 3, 3)
	id, err := ndarray.Identity(3, ndarray.WithDType(ndarray.Int32))
	require.NoError(t, err)

	got, err := ndarray.MatMul(a, id)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float64, got.DType())
	assert.True(t, ndarray.Equal(a, got))
}

func TestMatMul_Complex(t *testing.T) {
	a := mustNew(t, [][]complex128{{1i, 2}}, c128)
	b := mustNew(t, [][]complex128{{1i}, {1 - 1i}}, c128)

	// i·i + 2(1-i) = -1 + 2 - 2i = 1 - 2i.
	got, err := ndarray.MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]complex128{{1 - 2i}}, got.ToList())

	// Real × complex promotes.
	r := mustNew(t, [][]float64{{2, 3}})
	got, err = ndarray.MatMul(r, b)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Complex128, got.DType())
	assert.Equal(t, [][]complex128{{3 - 1i}}, got.ToList())
}

func TestMatMul_Errors(t *testing.T) {
	a := ramp(t, 3, 4)
	_, err := ndarray.MatMul(a, a)
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = ndarray.MatMul(a, mustNew(t, []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = ndarray.MatMul(nil, a)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}
