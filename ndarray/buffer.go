// SPDX-License-Identifier: MIT
// Package ndarray - flat typed buffers.
//
// Purpose:
//   - Hold one component (real or imaginary) of an Array in row-major order.
//   - Expose a float64 view (At/SetAt) so kernels are written once; the
//     concrete slice types stay exported for zero-copy fast paths.
//
// Conversion policy on SetAt:
//   - Float64Buffer stores the value as is.
//   - Float32Buffer rounds to the nearest float32.
//   - Int32Buffer truncates toward zero and wraps modulo 2^32; NaN and ±Inf store 0.

package ndarray

import "math"

// Buffer is a flat, fixed-length numeric buffer.
type Buffer interface {
	// Len returns the number of elements.
	Len() int
	// At reads element i widened to float64.
	At(i int) float64
	// SetAt stores v at i, converting to the element type.
	SetAt(i int, v float64)
	// DType reports the element dtype (always a real dtype).
	DType() DType

	clone() Buffer
}

// Int32Buffer is a Buffer of int32 elements.
type Int32Buffer []int32

// Float32Buffer is a Buffer of float32 elements.
type Float32Buffer []float32

// Float64Buffer is a Buffer of float64 elements.
type Float64Buffer []float64

var (
	_ Buffer = Int32Buffer(nil)
	_ Buffer = Float32Buffer(nil)
	_ Buffer = Float64Buffer(nil)
)

func (b Int32Buffer) Len() int               { return len(b) }
func (b Int32Buffer) At(i int) float64       { return float64(b[i]) }
func (b Int32Buffer) SetAt(i int, v float64) { b[i] = toInt32(v) }
func (b Int32Buffer) DType() DType           { return Int32 }
func (b Int32Buffer) clone() Buffer          { return append(Int32Buffer(nil), b...) }

func (b Float32Buffer) Len() int               { return len(b) }
func (b Float32Buffer) At(i int) float64       { return float64(b[i]) }
func (b Float32Buffer) SetAt(i int, v float64) { b[i] = float32(v) }
func (b Float32Buffer) DType() DType           { return Float32 }
func (b Float32Buffer) clone() Buffer          { return append(Float32Buffer(nil), b...) }

func (b Float64Buffer) Len() int               { return len(b) }
func (b Float64Buffer) At(i int) float64       { return b[i] }
func (b Float64Buffer) SetAt(i int, v float64) { b[i] = v }
func (b Float64Buffer) DType() DType           { return Float64 }
func (b Float64Buffer) clone() Buffer          { return append(Float64Buffer(nil), b...) }

// newBuffer allocates a zeroed buffer of n elements for a real component dtype.
func newBuffer(component DType, n int) Buffer {
	switch component {
	case Int32:
		return make(Int32Buffer, n)
	case Float32:
		return make(Float32Buffer, n)
	default:
		return make(Float64Buffer, n)
	}
}

// toInt32 converts with truncation toward zero and 32-bit wraparound.
func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	t := math.Trunc(v)
	if t >= -(1<<31) && t < 1<<31 {
		return int32(t)
	}
	m := math.Mod(t, 1<<32) // exact for integral t
	if m < 0 {
		m += 1 << 32
	}

	return int32(uint32(m))
}

// copyBuffer copies src into dst element by element, converting types.
// Same-typed buffers use the builtin copy.
func copyBuffer(dst, src Buffer) {
	switch d := dst.(type) {
	case Float64Buffer:
		if s, ok := src.(Float64Buffer); ok {
			copy(d, s)
			return
		}
	case Float32Buffer:
		if s, ok := src.(Float32Buffer); ok {
			copy(d, s)
			return
		}
	case Int32Buffer:
		if s, ok := src.(Int32Buffer); ok {
			copy(d, s)
			return
		}
	}
	n := src.Len()
	for i := 0; i < n; i++ {
		dst.SetAt(i, src.At(i))
	}
}
