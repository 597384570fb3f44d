// SPDX-License-Identifier: MIT
// Package fft - radix-2 Cooley-Tukey engine on split real/imaginary buffers.
//
// Purpose:
//   - Precompute twiddle tables once per size and transform many lines.
//   - Keep the transform in place: bit-reversal permutation, then butterflies
//     over block sizes 2, 4, ..., n.
//
// Conventions:
//   - Forward computes X[k] = Σ x[t]·e^(-2πi·kt/n), unnormalized.
//   - Inverse is Forward with the real and imaginary buffers swapped; it is
//     also unnormalized, callers divide by n.
//
// Complexity: NewPlan O(n); Forward/Inverse O(n log n) time, O(1) extra space.

package fft

import (
	"fmt"
	"math"
)

// Plan holds the twiddle tables for one power-of-two size.
// A Plan is immutable after NewPlan and safe for concurrent use.
type Plan struct {
	n        int
	levels   int
	cosTable []float64
	sinTable []float64
}

// NewPlan prepares a transform of size n.
// The exponent is found by scanning bits 0..31; any other n fails.
//
// Errors: ErrNotPowerOfTwo.
func NewPlan(n int) (*Plan, error) {
	levels := -1
	for i := 0; i < 32; i++ {
		if 1<<i == n {
			levels = i
			break
		}
	}
	if levels == -1 {
		return nil, fmt.Errorf("%s(%d): %w", opNewPlan, n, ErrNotPowerOfTwo)
	}

	half := n / 2
	p := &Plan{
		n:        n,
		levels:   levels,
		cosTable: make([]float64, half),
		sinTable: make([]float64, half),
	}
	for i := 0; i < half; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p.cosTable[i] = math.Cos(angle)
		p.sinTable[i] = math.Sin(angle)
	}

	return p, nil
}

// Len returns the transform size.
func (p *Plan) Len() int { return p.n }

// Levels returns log2 of the transform size.
func (p *Plan) Levels() int { return p.levels }

// Forward transforms (re, im) in place.
//
// Errors: ErrLengthMismatch when either slice is not exactly Len() long.
func (p *Plan) Forward(re, im []float64) error {
	if len(re) != p.n || len(im) != p.n {
		return fmt.Errorf("%s: got %d/%d, want %d: %w", opForward, len(re), len(im), p.n, ErrLengthMismatch)
	}
	p.forward(re, im)

	return nil
}

// Inverse applies the unnormalized inverse transform in place,
// defined as Forward(im, re).
func (p *Plan) Inverse(re, im []float64) error {
	return p.Forward(im, re)
}

func (p *Plan) forward(re, im []float64) {
	n := p.n

	// Bit-reversed addressing permutation.
	var i, j int
	for i = 0; i < n; i++ {
		j = reverseBits(i, p.levels)
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	// Butterflies: block size doubles each pass.
	var (
		halfsize, tablestep, k, l int
		tpre, tpim                float64
	)
	for size := 2; size <= n; size *= 2 {
		halfsize = size / 2
		tablestep = n / size
		for i = 0; i < n; i += size {
			k = 0
			for j = i; j < i+halfsize; j++ {
				l = j + halfsize
				tpre = re[l]*p.cosTable[k] + im[l]*p.sinTable[k]
				tpim = -re[l]*p.sinTable[k] + im[l]*p.cosTable[k]
				re[l] = re[j] - tpre
				im[l] = im[j] - tpim
				re[j] += tpre
				im[j] += tpim
				k += tablestep
			}
		}
	}
}

// reverseBits reverses the lower width bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, width int) int {
	result := 0
	for i := 0; i < width; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
