// SPDX-License-Identifier: MIT
// Package ndarray - Array type, factories and accessors.
//
// Purpose:
//   - Own typed storage, shape and dtype for a rank-1 or rank-2 array.
//   - Keep the explicit row-major index formula row*cols + col.
//   - Every factory and derived array allocates fresh buffers; nothing aliases.
//
// Complexity quicksheet:
//   - Empty/Zeros/Ones: O(size); Identity: O(n^2); Copy/AsType: O(size).

package ndarray

import (
	"fmt"
	"strings"
)

// Formatting literals used by String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array is a dense rank-1 or rank-2 array with real or complex storage.
//   - dtype selects the element type and the storage variant.
//   - shape is {n} or {rows, cols}; len(buffer) == shape.Size().
//   - store is RealStorage for real dtypes, ComplexStorage otherwise.
type Array struct {
	dtype DType
	shape Shape
	store Storage
}

var _ fmt.Stringer = (*Array)(nil)

// newArray allocates a zeroed array. Shape and dtype must be validated by the caller.
func newArray(shape Shape, d DType) *Array {
	return &Array{
		dtype: d,
		shape: shape.clone(),
		store: newStorage(d, shape.Size()),
	}
}

// Empty allocates an array of the given shape. Go zero-fills the buffers,
// so Empty and Zeros differ only by name.
// Errors: ErrBadShape.
func Empty(shape Shape, opts ...Option) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf(opEmpty, err)
	}
	o := gatherOptions(opts...)

	return newArray(shape, o.dtype), nil
}

// Zeros returns an all-zero array of the given shape.
func Zeros(shape Shape, opts ...Option) (*Array, error) {
	return Empty(shape, opts...)
}

// Ones returns an array whose real parts are 1 and imaginary parts (if any) are 0.
func Ones(shape Shape, opts ...Option) (*Array, error) {
	a, err := Empty(shape, opts...)
	if err != nil {
		return nil, err
	}
	re, _ := parts(a.store)
	for i := 0; i < re.Len(); i++ {
		re.SetAt(i, 1)
	}

	return a, nil
}

// Identity returns the n×n identity: buffer[i*(n+1)] = 1, zero elsewhere.
func Identity(n int, opts ...Option) (*Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrBadShape)
	}
	o := gatherOptions(opts...)
	a := newArray(Shape{n, n}, o.dtype)
	re, _ := parts(a.store)
	for i := 0; i < n; i++ {
		re.SetAt(i*(n+1), 1)
	}

	return a, nil
}

// Copy returns a deep copy of a.
func Copy(a *Array) *Array { return a.Copy() }

// Copy returns a deep copy with the same dtype and shape.
func (a *Array) Copy() *Array {
	return &Array{
		dtype: a.dtype,
		shape: a.shape.clone(),
		store: cloneStorage(a.store),
	}
}

// AsType returns a copy converted to dtype d.
//   - complex → real drops the imaginary buffer;
//   - real → complex starts with a zero imaginary buffer;
//   - float → int32 truncates toward zero.
func (a *Array) AsType(d DType) (*Array, error) {
	if !d.Valid() {
		return nil, arrayErrorf(opAsType, ErrUnknownDType)
	}
	if d == a.dtype {
		return a.Copy(), nil
	}
	out := newArray(a.shape, d)
	srcRe, srcIm := parts(a.store)
	dstRe, dstIm := parts(out.store)
	copyBuffer(dstRe, srcRe)
	if dstIm != nil && srcIm != nil {
		copyBuffer(dstIm, srcIm)
	}

	return out, nil
}

// DType returns the element dtype.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the shape.
func (a *Array) Shape() Shape { return a.shape.clone() }

// Ndim returns the rank (1 or 2).
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return a.store.Len() }

// Rows returns the first extent.
func (a *Array) Rows() int { return a.shape[0] }

// Cols returns the second extent, or 1 for a 1-D array.
func (a *Array) Cols() int {
	if len(a.shape) == 1 {
		return 1
	}

	return a.shape[1]
}

// IsComplex reports whether the array carries an imaginary buffer.
func (a *Array) IsComplex() bool {
	_, ok := a.store.(ComplexStorage)
	return ok
}

// Storage exposes the backing variant for packages that operate on raw buffers.
// Mutating the buffers mutates the array.
func (a *Array) Storage() Storage { return a.store }

// Real returns the real buffer (shared, not copied).
func (a *Array) Real() Buffer {
	re, _ := parts(a.store)
	return re
}

// Imag returns the imaginary buffer, or nil for a real dtype.
func (a *Array) Imag() Buffer {
	_, im := parts(a.store)
	return im
}

// value reads flat position p as complex128.
func (a *Array) value(p int) complex128 {
	re, im := parts(a.store)
	if im == nil {
		return complex(re.At(p), 0)
	}

	return complex(re.At(p), im.At(p))
}

// setValue writes flat position p; the imaginary part is dropped for real dtypes.
func (a *Array) setValue(p int, v complex128) {
	re, im := parts(a.store)
	re.SetAt(p, real(v))
	if im != nil {
		im.SetAt(p, imag(v))
	}
}

// Flat returns every element in row-major order as complex128.
func (a *Array) Flat() []complex128 {
	n := a.Size()
	out := make([]complex128, n)
	for p := 0; p < n; p++ {
		out[p] = a.value(p)
	}

	return out
}

// ToList returns the elements as nested Go slices:
//
//	real 1-D    → []float64
//	real 2-D    → [][]float64
//	complex 1-D → []complex128
//	complex 2-D → [][]complex128
func (a *Array) ToList() any {
	re, im := parts(a.store)
	if len(a.shape) == 1 {
		if im == nil {
			out := make([]float64, re.Len())
			for i := range out {
				out[i] = re.At(i)
			}
			return out
		}
		return a.Flat()
	}

	rows, cols := a.shape[0], a.shape[1]
	if im == nil {
		out := make([][]float64, rows)
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			for j := 0; j < cols; j++ {
				row[j] = re.At(i*cols + j)
			}
			out[i] = row
		}
		return out
	}
	out := make([][]complex128, rows)
	for i := 0; i < rows; i++ {
		row := make([]complex128, cols)
		for j := 0; j < cols; j++ {
			row[j] = complex(re.At(i*cols+j), im.At(i*cols+j))
		}
		out[i] = row
	}

	return out
}

// Do visits each element in row-major order with its flat position and
// stops early when f returns false. Real arrays report a zero imaginary part.
func (a *Array) Do(f func(p int, v complex128) bool) {
	n := a.Size()
	for p := 0; p < n; p++ {
		if !f(p, a.value(p)) {
			return
		}
	}
}

// Apply replaces each element with f(p, v) in place, row-major order.
// For real dtypes the imaginary part of the result is discarded.
func (a *Array) Apply(f func(p int, v complex128) complex128) {
	n := a.Size()
	for p := 0; p < n; p++ {
		a.setValue(p, f(p, a.value(p)))
	}
}

// String renders one bracketed line per row; values use %g.
func (a *Array) String() string {
	var b strings.Builder
	rows, cols := a.Rows(), a.Cols()
	if len(a.shape) == 1 {
		rows, cols = 1, a.shape[0]
	}
	complexDT := a.IsComplex()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			v := a.value(i*cols + j)
			if complexDT {
				b.WriteString(fmt.Sprintf("%g", v))
			} else {
				b.WriteString(fmt.Sprintf("%g", real(v)))
			}
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
