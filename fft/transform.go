// SPDX-License-Identifier: MIT

package fft

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnum/ndarray"
)

// FFT returns the forward transform of a's flat buffer (rank is ignored).
// Real dtypes are promoted to their complex counterpart; complex dtypes
// are kept. The input is never modified. An empty array transforms to an
// empty array.
//
// Errors: ErrNilArray, ErrNotPowerOfTwo (size not a power of two).
func FFT(a *ndarray.Array) (*ndarray.Array, error) {
	return transform1(opFFT, a, false)
}

// IFFT returns the inverse transform of a's flat buffer, normalized by 1/size.
//
// Errors: ErrNilArray, ErrNotPowerOfTwo.
func IFFT(a *ndarray.Array) (*ndarray.Array, error) {
	return transform1(opIFFT, a, true)
}

// FFT2 returns the 2-D forward transform of a square matrix: every row,
// then every column.
//
// Errors: ErrNilArray, ErrNotSquareMatrix, ErrNotPowerOfTwo.
func FFT2(a *ndarray.Array) (*ndarray.Array, error) {
	return transform2(opFFT2, a, false)
}

// IFFT2 returns the 2-D inverse transform of a square matrix, normalized
// by 1/size.
//
// Errors: ErrNilArray, ErrNotSquareMatrix, ErrNotPowerOfTwo.
func IFFT2(a *ndarray.Array) (*ndarray.Array, error) {
	return transform2(opIFFT2, a, true)
}

// complexCopy returns a fresh complex array holding a's values.
func complexCopy(tag string, a *ndarray.Array) (*ndarray.Array, error) {
	if a == nil {
		return nil, fftErrorf(tag, ErrNilArray)
	}
	if a.IsComplex() {
		return a.Copy(), nil
	}
	out, err := a.AsType(a.DType().ComplexOf())
	if err != nil {
		return nil, fftErrorf(tag, err)
	}

	return out, nil
}

func transform1(tag string, a *ndarray.Array, inverse bool) (*ndarray.Array, error) {
	out, err := complexCopy(tag, a)
	if err != nil {
		return nil, err
	}
	n := out.Size()
	if n == 0 {
		return out, nil
	}
	plan, err := NewPlan(n)
	if err != nil {
		return nil, fftErrorf(tag, err)
	}

	l := newLines(plan, out)
	if inverse {
		l.scale(1 / float64(n))
	}
	l.run(0, 1, inverse)

	return out, nil
}

func transform2(tag string, a *ndarray.Array, inverse bool) (*ndarray.Array, error) {
	if a == nil {
		return nil, fftErrorf(tag, ErrNilArray)
	}
	if a.Ndim() != 2 || a.Rows() != a.Cols() {
		return nil, fmt.Errorf("%s: shape %v: %w", tag, []int(a.Shape()), ErrNotSquareMatrix)
	}
	out, err := complexCopy(tag, a)
	if err != nil {
		return nil, err
	}
	n := out.Rows()
	if n == 0 {
		return out, nil
	}
	plan, err := NewPlan(n)
	if err != nil {
		return nil, fftErrorf(tag, err)
	}

	l := newLines(plan, out)
	if inverse {
		// 1/n per row pass and 1/n per column pass.
		l.scale(1 / (float64(n) * float64(n)))
	}
	for i := 0; i < n; i++ {
		l.run(i*n, 1, inverse)
	}
	for j := 0; j < n; j++ {
		l.run(j, n, inverse)
	}

	return out, nil
}

// lines applies one Plan to strided runs of a complex array's buffers.
// Float64 buffers with unit stride are transformed in place; anything else
// is gathered into float64 scratch, transformed and scattered back.
type lines struct {
	plan     *Plan
	re, im   ndarray.Buffer
	sre, sim []float64
}

func newLines(plan *Plan, a *ndarray.Array) *lines {
	return &lines{
		plan: plan,
		re:   a.Real(),
		im:   a.Imag(),
		sre:  make([]float64, plan.n),
		sim:  make([]float64, plan.n),
	}
}

func (l *lines) run(start, stride int, inverse bool) {
	n := l.plan.n
	if fr, ok := l.re.(ndarray.Float64Buffer); ok && stride == 1 {
		fi := l.im.(ndarray.Float64Buffer)
		l.apply(fr[start:start+n], fi[start:start+n], inverse)
		return
	}

	var t, p int
	for t, p = 0, start; t < n; t, p = t+1, p+stride {
		l.sre[t] = l.re.At(p)
		l.sim[t] = l.im.At(p)
	}
	l.apply(l.sre, l.sim, inverse)
	for t, p = 0, start; t < n; t, p = t+1, p+stride {
		l.re.SetAt(p, l.sre[t])
		l.im.SetAt(p, l.sim[t])
	}
}

func (l *lines) apply(re, im []float64, inverse bool) {
	if inverse {
		l.plan.forward(im, re)
		return
	}
	l.plan.forward(re, im)
}

// scale multiplies both buffers by s.
func (l *lines) scale(s float64) {
	for _, b := range []ndarray.Buffer{l.re, l.im} {
		if fb, ok := b.(ndarray.Float64Buffer); ok {
			floats.Scale(s, fb)
			continue
		}
		for i := 0; i < b.Len(); i++ {
			b.SetAt(i, b.At(i)*s)
		}
	}
}
