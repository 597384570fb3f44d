// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Transpose returns aᵀ as a new array. A 2-D r×c input yields c×r with
// result[col*r + row] = source[row*c + col]; both buffers move in lockstep
// for complex dtypes. A 1-D input is returned as a copy.
func Transpose(a *Array) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opTranspose, ErrNilArray)
	}

	return a.Transpose(), nil
}

// Transpose is the method form of the package-level Transpose.
func (a *Array) Transpose() *Array {
	if len(a.shape) == 1 {
		return a.Copy()
	}
	rows, cols := a.shape[0], a.shape[1]
	out := newArray(Shape{cols, rows}, a.dtype)
	srcRe, srcIm := parts(a.store)
	dstRe, dstIm := parts(out.store)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dstRe.SetAt(j*rows+i, srcRe.At(base+j))
			if srcIm != nil {
				dstIm.SetAt(j*rows+i, srcIm.At(base+j))
			}
		}
	}

	return out
}

// MatMul returns the matrix product a @ b with shape (a.Rows, b.Cols).
// Both operands must be 2-D and conformable (a.Cols == b.Rows).
// The result dtype is Promote(a, b). Complex operands accumulate
// re += ar*br - ai*bi, im += ar*bi + ai*br per term.
//
// Errors: ErrNilArray, ErrDimensionMismatch.
//
// Complexity: O(r*n*c) time, O(r*c) space.
func MatMul(a, b *Array) (*Array, error) {
	if a == nil || b == nil {
		return nil, arrayErrorf(opMatMul, ErrNilArray)
	}
	if len(a.shape) != 2 || len(b.shape) != 2 || a.shape[1] != b.shape[0] {
		return nil, fmt.Errorf("%s: shapes %v @ %v: %w", opMatMul, []int(a.shape), []int(b.shape), ErrDimensionMismatch)
	}
	aRows, inner, bCols := a.shape[0], a.shape[1], b.shape[1]
	out := newArray(Shape{aRows, bCols}, Promote(a.dtype, b.dtype))
	aRe, aIm := parts(a.store)
	bRe, bIm := parts(b.store)
	oRe, oIm := parts(out.store)

	var (
		i, j, k        int
		sumRe, sumIm   float64
		ar, ai, br, bi float64
	)
	if oIm == nil {
		for i = 0; i < aRows; i++ {
			for j = 0; j < bCols; j++ {
				sumRe = 0
				for k = 0; k < inner; k++ {
					sumRe += aRe.At(i*inner+k) * bRe.At(k*bCols+j)
				}
				oRe.SetAt(i*bCols+j, sumRe)
			}
		}
		return out, nil
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sumRe, sumIm = 0, 0
			for k = 0; k < inner; k++ {
				ar, ai = aRe.At(i*inner+k), component(aIm, i*inner+k)
				br, bi = bRe.At(k*bCols+j), component(bIm, k*bCols+j)
				sumRe += ar*br - ai*bi
				sumIm += ar*bi + ai*br
			}
			oRe.SetAt(i*bCols+j, sumRe)
			oIm.SetAt(i*bCols+j, sumIm)
		}
	}

	return out, nil
}

// MatMul is the method form: a @ b.
func (a *Array) MatMul(b *Array) (*Array, error) { return MatMul(a, b) }
