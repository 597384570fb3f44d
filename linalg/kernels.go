// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnum/ndarray"
)

// rinvFloat64 is rinv over a float64 buffer, using row slices.
func rinvFloat64(b ndarray.Float64Buffer, n int) {
	w := 2 * n
	row := func(i int) []float64 { return b[i*w : (i+1)*w] }

	var (
		i, r, j      int
		pivot, other []float64
		p, f         float64
	)
	for i = 0; i < n; i++ {
		pivot = row(i)
		if pivot[i] == 0 {
			for r = i + 1; r < n; r++ {
				if b[r*w+i] != 0 {
					other = row(r)
					for j = range pivot {
						pivot[j], other[j] = other[j], pivot[j]
					}
					break
				}
			}
		}

		p = pivot[i]
		for j = 0; j < w; j++ {
			pivot[j] /= p
		}

		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			f = b[r*w+i]
			floats.AddScaled(row(r), -f, pivot)
		}
	}
}

// rinv reduces a real augmented matrix held in any Buffer.
// Intermediate values are stored back after every step, so float32
// buffers round like native float32 arithmetic.
func rinv(b ndarray.Buffer, n int) {
	w := 2 * n

	var (
		i, r, j int
		p, f    float64
	)
	for i = 0; i < n; i++ {
		if b.At(i*w+i) == 0 {
			for r = i + 1; r < n; r++ {
				if b.At(r*w+i) != 0 {
					swapRows(b, nil, i, r, w)
					break
				}
			}
		}

		p = b.At(i*w + i)
		for j = 0; j < w; j++ {
			b.SetAt(i*w+j, b.At(i*w+j)/p)
		}

		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			f = b.At(r*w + i)
			for j = 0; j < w; j++ {
				b.SetAt(r*w+j, b.At(r*w+j)-f*b.At(i*w+j))
			}
		}
	}
}

// cinv reduces a complex augmented matrix held in a (re, im) buffer pair.
// A pivot counts as zero only when both components are zero.
func cinv(re, im ndarray.Buffer, n int) {
	w := 2 * n

	var (
		i, r, j        int
		pr, pi, fr, fi float64
		xr, xi         float64
	)
	for i = 0; i < n; i++ {
		if re.At(i*w+i) == 0 && im.At(i*w+i) == 0 {
			for r = i + 1; r < n; r++ {
				if re.At(r*w+i) != 0 || im.At(r*w+i) != 0 {
					swapRows(re, im, i, r, w)
					break
				}
			}
		}

		pr, pi = re.At(i*w+i), im.At(i*w+i)
		for j = 0; j < w; j++ {
			xr, xi = cdiv(re.At(i*w+j), im.At(i*w+j), pr, pi)
			re.SetAt(i*w+j, xr)
			im.SetAt(i*w+j, xi)
		}

		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			fr, fi = re.At(r*w+i), im.At(r*w+i)
			for j = 0; j < w; j++ {
				xr, xi = cmul(fr, fi, re.At(i*w+j), im.At(i*w+j))
				re.SetAt(r*w+j, re.At(r*w+j)-xr)
				im.SetAt(r*w+j, im.At(r*w+j)-xi)
			}
		}
	}
}

// swapRows exchanges rows a and b of width w; im may be nil.
func swapRows(re, im ndarray.Buffer, a, b, w int) {
	var x float64
	for j := 0; j < w; j++ {
		x = re.At(a*w + j)
		re.SetAt(a*w+j, re.At(b*w+j))
		re.SetAt(b*w+j, x)
		if im != nil {
			x = im.At(a*w + j)
			im.SetAt(a*w+j, im.At(b*w+j))
			im.SetAt(b*w+j, x)
		}
	}
}

func cmul(ar, ai, br, bi float64) (float64, float64) {
	return ar*br - ai*bi, ar*bi + ai*br
}

// cdiv divides (ar + ai·i) by (br + bi·i) through the conjugate:
// ((ar·br + ai·bi) + (ai·br - ar·bi)·i) / (br² + bi²).
func cdiv(ar, ai, br, bi float64) (float64, float64) {
	d := br*br + bi*bi
	return (ar*br + ai*bi) / d, (ai*br - ar*bi) / d
}
