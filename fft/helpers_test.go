// SPDX-License-Identifier: MIT
// Package fft_test contains shared fixtures for transform tests.

package fft_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/lvnum/ndarray"
)

// tol64 and tol32 are the absolute tolerances for complex128 and complex64 results.
const (
	tol64 = 1e-9
	tol32 = 1e-3
)

// randComplex returns n deterministic pseudo-random values in [-1, 1).
func randComplex(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return out
}

// approx compares complex values by modulus of the difference.
func approx(tol float64) cmp.Option {
	return cmp.Comparer(func(x, y complex128) bool {
		return cmplx.Abs(x-y) <= tol
	})
}

// requireFlat fails unless a's flat values match want within tol.
func requireFlat(t testing.TB, want []complex128, a *ndarray.Array, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, a.Flat(), approx(tol)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// oracle computes the unnormalized forward DFT with gonum.
func oracle(x []complex128) []complex128 {
	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, x)
}

// oracle2 computes the 2-D forward DFT of an n×n row-major matrix with gonum.
func oracle2(x []complex128, n int) []complex128 {
	f := fourier.NewCmplxFFT(n)
	out := append([]complex128(nil), x...)
	line := make([]complex128, n)
	for i := 0; i < n; i++ {
		f.Coefficients(out[i*n:(i+1)*n], out[i*n:(i+1)*n])
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			line[i] = out[i*n+j]
		}
		f.Coefficients(line, line)
		for i := 0; i < n; i++ {
			out[i*n+j] = line[i]
		}
	}

	return out
}

// mustArray builds an array or fails the test.
func mustArray(t testing.TB, data any, opts ...ndarray.Option) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(data, opts...)
	require.NoError(t, err)

	return a
}
