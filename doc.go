// Package lvnum is a small dense-array numeric engine: rank-1/rank-2 arrays
// with real or complex storage, a power-of-two FFT and a Gauss-Jordan
// matrix inverse.
//
// 🚀 What is lvnum?
//
//	A pure-Go library that brings together:
//		• Arrays: int32, float32, float64, complex64, complex128 dtypes
//		• Indexing: scalar and strided slice keys, copy-on-read
//		• Arithmetic: elementwise + - * /, scalar and reflected forms
//		• Algebra: Transpose, MatMul, Reshape, HStack/VStack, HSplit/VSplit
//		• Spectra: radix-2 FFT/IFFT in 1-D and 2-D
//		• Inversion: Gauss-Jordan for real and complex matrices
//
// ✨ Why choose lvnum?
//
//   - Explicit errors – every failure is a package sentinel, matched with errors.Is
//   - Predictable numerics – IEEE semantics, singular inverses yield NaN/Inf
//   - No aliasing – every operation returns freshly allocated storage
//
// Under the hood, everything is organized under three subpackages:
//
//	ndarray/ — Array, DType, Storage, factories, indexing, arithmetic, stacking
//	fft/     — Plan (twiddle tables + in-place butterflies), FFT/IFFT, FFT2/IFFT2
//	linalg/  — Inv, Augment, GaussJordan, Solve
//
// Runnable programs live under examples/ (spectrum, inverse).
//
//	go get github.com/katalvlaran/lvnum
package lvnum
