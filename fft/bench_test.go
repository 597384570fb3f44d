// SPDX-License-Identifier: MIT
// Package fft_test provides benchmarks for the radix-2 engine and array transforms.

package fft_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/fft"
	"github.com/katalvlaran/lvnum/ndarray"
)

var benchSizes = []int{256, 4096, 65536}

// sinks to defeat dead-code elimination
var (
	sinkA   *ndarray.Array
	sinkErr error
)

func BenchmarkPlanForward(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p, err := fft.NewPlan(n)
			if err != nil {
				b.Fatal(err)
			}
			x := randComplex(n, 1337)
			re, im := make([]float64, n), make([]float64, n)
			for i, v := range x {
				re[i], im[i] = real(v), imag(v)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = p.Forward(re, im)
			}
		})
	}
}

func BenchmarkFFT(b *testing.B) {
	b.ReportAllocs()
	for _, dt := range []ndarray.DType{ndarray.Complex128, ndarray.Complex64} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", dt, n), func(b *testing.B) {
				x := mustArray(b, randComplex(n, 4242), ndarray.WithDType(dt))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkA, sinkErr = fft.FFT(x)
				}
			})
		}
	}
}

func BenchmarkFFT2(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			flat := mustArray(b, randComplex(n*n, 11), c128)
			x, err := flat.Reshape(ndarray.Shape{n, n})
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkA, sinkErr = fft.FFT2(x)
			}
		})
	}
}
