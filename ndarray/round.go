// SPDX-License-Identifier: MIT

package ndarray

import "gonum.org/v1/gonum/floats/scalar"

// Round returns a copy of a with every real and imaginary component rounded
// to the given number of decimal places. Halves round away from zero
// (2.5 → 3, -0.125 at 2 decimals → -0.13); this is not banker's rounding.
// Negative decimals round to tens, hundreds, and so on. Round(nil, d) is nil.
func Round(a *Array, decimals int) *Array {
	if a == nil {
		return nil
	}
	out := a.Copy()
	re, im := parts(out.store)
	roundBuffer(re, decimals)
	if im != nil {
		roundBuffer(im, decimals)
	}

	return out
}

func roundBuffer(b Buffer, decimals int) {
	if f, ok := b.(Float64Buffer); ok {
		for i, v := range f {
			f[i] = scalar.Round(v, decimals)
		}
		return
	}
	for i := 0; i < b.Len(); i++ {
		b.SetAt(i, scalar.Round(b.At(i), decimals))
	}
}
