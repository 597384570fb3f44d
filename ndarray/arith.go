// SPDX-License-Identifier: MIT
// Package ndarray - elementwise arithmetic.
//
// Purpose:
//   - Add/Sub/Mul/Div between equal-shaped arrays and against scalars.
//   - Neg and Inv (reciprocal) as unary kernels.
//
// Policy:
//   - Two arrays must have identical shapes (ErrDimensionMismatch); no broadcasting.
//   - The result dtype is Promote(a.DType(), b.DType()).
//   - Scalar forms keep the array dtype unless a real array meets a scalar
//     with a non-zero imaginary part; that promotes to DType.ComplexOf.
//   - Values are computed in float64 and stored with the result buffer's
//     conversion (int32 division truncates). Division by zero follows IEEE.
//
// Complex formulas:
//
//	(a)(b) = (ar*br - ai*bi, ar*bi + ai*br)
//	(a)/(b) = ((ar*br + ai*bi)/d, (ai*br - ar*bi)/d), d = br² + bi²
//
// Every operation allocates a fresh result; operands are never mutated.

package ndarray

import "fmt"

type realKernel func(x, y float64) float64
type complexKernel func(ar, ai, br, bi float64) (re, im float64)

func addReal(x, y float64) float64 { return x + y }
func subReal(x, y float64) float64 { return x - y }
func mulReal(x, y float64) float64 { return x * y }
func divReal(x, y float64) float64 { return x / y }

func addComplex(ar, ai, br, bi float64) (float64, float64) { return ar + br, ai + bi }
func subComplex(ar, ai, br, bi float64) (float64, float64) { return ar - br, ai - bi }

func mulComplex(ar, ai, br, bi float64) (float64, float64) {
	return ar*br - ai*bi, ar*bi + ai*br
}

func divComplex(ar, ai, br, bi float64) (float64, float64) {
	denom := br*br + bi*bi
	return (ar*br + ai*bi) / denom, (ai*br - ar*bi) / denom
}

// component reads flat position p of an optional buffer; nil reads as zero.
func component(b Buffer, p int) float64 {
	if b == nil {
		return 0
	}

	return b.At(p)
}

// binary applies an elementwise kernel to two equal-shaped arrays.
func binary(a, b *Array, opTag string, rk realKernel, ck complexKernel) (*Array, error) {
	if a == nil || b == nil {
		return nil, arrayErrorf(opTag, ErrNilArray)
	}
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%s: shapes %v and %v: %w", opTag, []int(a.shape), []int(b.shape), ErrDimensionMismatch)
	}
	out := newArray(a.shape, Promote(a.dtype, b.dtype))
	aRe, aIm := parts(a.store)
	bRe, bIm := parts(b.store)
	oRe, oIm := parts(out.store)
	n := out.Size()

	if oIm == nil {
		// Fast path: float64 with float64 into float64, one flat loop.
		if da, ok := aRe.(Float64Buffer); ok {
			if db, ok := bRe.(Float64Buffer); ok {
				if do, ok := oRe.(Float64Buffer); ok {
					for p := 0; p < n; p++ {
						do[p] = rk(da[p], db[p])
					}
					return out, nil
				}
			}
		}
		for p := 0; p < n; p++ {
			oRe.SetAt(p, rk(aRe.At(p), bRe.At(p)))
		}
		return out, nil
	}

	var re, im float64
	for p := 0; p < n; p++ {
		re, im = ck(aRe.At(p), component(aIm, p), bRe.At(p), component(bIm, p))
		oRe.SetAt(p, re)
		oIm.SetAt(p, im)
	}

	return out, nil
}

// withScalar applies an elementwise kernel between a and the scalar c.
func withScalar(a *Array, c complex128, opTag string, rk realKernel, ck complexKernel) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opTag, ErrNilArray)
	}
	dt := a.dtype
	if !dt.IsComplex() && imag(c) != 0 {
		dt = dt.ComplexOf()
	}
	out := newArray(a.shape, dt)
	aRe, aIm := parts(a.store)
	oRe, oIm := parts(out.store)
	cr, ci := real(c), imag(c)
	n := out.Size()

	if oIm == nil {
		for p := 0; p < n; p++ {
			oRe.SetAt(p, rk(aRe.At(p), cr))
		}
		return out, nil
	}

	var re, im float64
	for p := 0; p < n; p++ {
		re, im = ck(aRe.At(p), component(aIm, p), cr, ci)
		oRe.SetAt(p, re)
		oIm.SetAt(p, im)
	}

	return out, nil
}

// Add returns a + b elementwise.
func Add(a, b *Array) (*Array, error) { return binary(a, b, opAdd, addReal, addComplex) }

// Sub returns a - b elementwise.
func Sub(a, b *Array) (*Array, error) { return binary(a, b, opSub, subReal, subComplex) }

// Mul returns a * b elementwise (not the matrix product; see MatMul).
func Mul(a, b *Array) (*Array, error) { return binary(a, b, opMul, mulReal, mulComplex) }

// Div returns a / b elementwise.
func Div(a, b *Array) (*Array, error) { return binary(a, b, opDiv, divReal, divComplex) }

// AddScalar returns a + c.
func AddScalar(a *Array, c complex128) (*Array, error) {
	return withScalar(a, c, opAdd, addReal, addComplex)
}

// SubScalar returns a - c.
func SubScalar(a *Array, c complex128) (*Array, error) {
	return withScalar(a, c, opSub, subReal, subComplex)
}

// MulScalar returns a * c.
func MulScalar(a *Array, c complex128) (*Array, error) {
	return withScalar(a, c, opMul, mulReal, mulComplex)
}

// DivScalar returns a / c.
func DivScalar(a *Array, c complex128) (*Array, error) {
	return withScalar(a, c, opDiv, divReal, divComplex)
}

// RSubScalar returns c - a.
func RSubScalar(c complex128, a *Array) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opSub, ErrNilArray)
	}

	return AddScalar(Neg(a), c)
}

// RDivScalar returns c / a, computed as Inv(a) * c.
func RDivScalar(c complex128, a *Array) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opDiv, ErrNilArray)
	}

	return MulScalar(Inv(a), c)
}

// Neg returns -a, negating every buffer entry. Neg(nil) is nil.
func Neg(a *Array) *Array {
	if a == nil {
		return nil
	}
	out := a.Copy()
	re, im := parts(out.store)
	for p := 0; p < re.Len(); p++ {
		re.SetAt(p, -re.At(p))
		if im != nil {
			im.SetAt(p, -im.At(p))
		}
	}

	return out
}

// Inv returns the elementwise reciprocal 1/a. Complex elements use
// (re/d, -im/d) with d = re² + im². Inv(nil) is nil.
func Inv(a *Array) *Array {
	if a == nil {
		return nil
	}
	out := a.Copy()
	re, im := parts(out.store)
	n := re.Len()
	if im == nil {
		for p := 0; p < n; p++ {
			re.SetAt(p, 1/re.At(p))
		}
		return out
	}
	var r, i, denom float64
	for p := 0; p < n; p++ {
		r, i = re.At(p), im.At(p)
		denom = r*r + i*i
		re.SetAt(p, r/denom)
		im.SetAt(p, -i/denom)
	}

	return out
}
