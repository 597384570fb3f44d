// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// AllClose reports whether a and b have the same shape and every component
// satisfies |a-b| ≤ atol + rtol*|b|. Real operands compare against a zero
// imaginary part, so dtypes may differ. Negative tolerances are taken as
// their absolute value; NaN never compares close.
//
// Errors: ErrNilArray, ErrDimensionMismatch (shape mismatch).
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, arrayErrorf(opAllClose, ErrNilArray)
	}
	if !a.shape.Equal(b.shape) {
		return false, fmt.Errorf("%s: shapes %v and %v: %w", opAllClose, []int(a.shape), []int(b.shape), ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	aRe, aIm := parts(a.store)
	bRe, bIm := parts(b.store)
	n := a.Size()
	for p := 0; p < n; p++ {
		if !within(aRe.At(p), bRe.At(p), rtol, atol) ||
			!within(component(aIm, p), component(bIm, p), rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

func within(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// Equal reports whether a and b share dtype and shape and hold identical
// values element for element.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return false
	}
	aRe, aIm := parts(a.store)
	bRe, bIm := parts(b.store)
	for p := 0; p < a.Size(); p++ {
		if aRe.At(p) != bRe.At(p) || component(aIm, p) != component(bIm, p) {
			return false
		}
	}

	return true
}
