// SPDX-License-Identifier: MIT
// Package ndarray_test provides benchmarks for elementwise kernels, MatMul
// and Transpose, using deterministic random fill.

package ndarray_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/ndarray"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkA   *ndarray.Array
	sinkErr error
)

func randArray(b *testing.B, n int, dt ndarray.DType, seed int64) *ndarray.Array {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := ndarray.Zeros(ndarray.Shape{n, n}, ndarray.WithDType(dt))
	if err != nil {
		b.Fatal(err)
	}
	a.Apply(func(int, complex128) complex128 {
		return complex(rng.Float64(), rng.Float64())
	})

	return a
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, dt := range []ndarray.DType{ndarray.Float64, ndarray.Float32, ndarray.Complex128} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", dt, n), func(b *testing.B) {
				x := randArray(b, n, dt, 1337)
				y := randArray(b, n, dt, 4242)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkA, sinkErr = ndarray.Add(x, y)
				}
			})
		}
	}
}

func BenchmarkMatMul(b *testing.B) {
	b.ReportAllocs()
	for _, dt := range []ndarray.DType{ndarray.Float64, ndarray.Complex128} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", dt, n), func(b *testing.B) {
				x := randArray(b, n, dt, 11)
				y := randArray(b, n, dt, 22)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkA, sinkErr = ndarray.MatMul(x, y)
				}
			})
		}
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randArray(b, n, ndarray.Float64, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkA = x.Transpose()
			}
		})
	}
}
