// SPDX-License-Identifier: MIT
// Package ndarray_test contains shared fixtures.

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/ndarray"
)

// allDTypes lists every supported dtype in promotion order.
var allDTypes = []ndarray.DType{
	ndarray.Int32,
	ndarray.Float32,
	ndarray.Float64,
	ndarray.Complex64,
	ndarray.Complex128,
}

var c128 = ndarray.WithDType(ndarray.Complex128)

// mustNew builds an array via ndarray.New or fails the test.
func mustNew(t testing.TB, data any, opts ...ndarray.Option) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(data, opts...)
	require.NoError(t, err)

	return a
}

// mustGet reads a selection or fails the test.
func mustGet(t testing.TB, a *ndarray.Array, keys ...ndarray.Key) ndarray.Item {
	t.Helper()
	it, err := a.Get(keys...)
	require.NoError(t, err)

	return it
}

// ramp returns a rows×cols float64 matrix holding 0, 1, 2, ... row-major.
func ramp(t testing.TB, rows, cols int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Zeros(ndarray.Shape{rows, cols})
	require.NoError(t, err)
	a.Apply(func(p int, _ complex128) complex128 { return complex(float64(p), 0) })

	return a
}
