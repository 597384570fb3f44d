// Package fft implements the power-of-two radix-2 Fast Fourier Transform
// over ndarray arrays.
//
// 🚀 What is in here?
//
//	Plan        — precomputed cos/sin tables for one size n = 2^k
//	Forward     — in-place unnormalized DFT on split re/im []float64
//	Inverse     — Forward with the buffers swapped (also unnormalized)
//	FFT / IFFT  — transform an Array's flat buffer (IFFT divides by size)
//	FFT2/IFFT2  — square matrices: every row, then every column
//
// ✨ Conventions:
//
//   - Forward sign: X[k] = Σ x[t]·e^(-2πi·kt/n).
//   - Real input is promoted to the matching complex dtype
//     (int32/float64 → complex128, float32 → complex64).
//   - complex64 data is transformed in float64 scratch and rounded back.
//   - Sizes that are not powers of two fail with ErrNotPowerOfTwo;
//     there is no Bluestein or mixed-radix fallback.
//
// ⚙️ Usage:
//
//	x, _ := ndarray.New([]float64{1, 0, 0, 0})
//	X, _ := fft.FFT(x)    // [1 1 1 1] as complex128
//	y, _ := fft.IFFT(X)   // back to [1 0 0 0]
//
// A Plan may be reused across goroutines; transforms allocate fresh arrays.
package fft
