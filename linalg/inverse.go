// SPDX-License-Identifier: MIT
// Package linalg - Gauss-Jordan inversion on an augmented [A | I] matrix.
//
// Algorithm, per pivot column i = 0..n-1:
//  1. If aug[i][i] is zero, swap row i with the first row below it whose
//     entry in column i is non-zero. No magnitude-based pivoting.
//  2. Divide row i by its pivot.
//  3. For every row r != i subtract aug[r][i] * row i.
//
// After n pivots the left half is I and the right half is A⁻¹.
//
// Numeric contract: a singular matrix leaves a zero pivot in place, so step 2
// divides by zero and NaN/±Inf spread through the result. No error is raised.
//
// Complexity: O(n^3) time, O(n^2) extra space for the augmented matrix.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvnum/ndarray"
)

// Inv returns the inverse of the square matrix a.
// Int32 input is promoted to float64; every other dtype is kept.
//
// Errors: ErrNilArray, ErrNotSquare.
func Inv(a *ndarray.Array) (*ndarray.Array, error) {
	if err := checkSquare(opInv, a); err != nil {
		return nil, err
	}
	src := a
	if a.DType() == ndarray.Int32 {
		var err error
		if src, err = a.AsType(ndarray.Float64); err != nil {
			return nil, linalgErrorf(opInv, err)
		}
	}

	aug, err := Augment(src)
	if err != nil {
		return nil, linalgErrorf(opInv, err)
	}
	if err = GaussJordan(aug); err != nil {
		return nil, linalgErrorf(opInv, err)
	}
	halves, err := ndarray.HSplit(aug, 2)
	if err != nil {
		return nil, linalgErrorf(opInv, err)
	}

	return halves[1], nil
}

// Augment returns [a | I], the n×2n scratch matrix used by GaussJordan.
// The identity takes a's dtype.
//
// Errors: ErrNilArray, ErrNotSquare.
func Augment(a *ndarray.Array) (*ndarray.Array, error) {
	if err := checkSquare(opAugment, a); err != nil {
		return nil, err
	}
	id, err := ndarray.Identity(a.Rows(), ndarray.WithDType(a.DType()))
	if err != nil {
		return nil, linalgErrorf(opAugment, err)
	}
	aug, err := ndarray.HStack(a, id)
	if err != nil {
		return nil, linalgErrorf(opAugment, err)
	}

	return aug, nil
}

// GaussJordan reduces the n×2n matrix aug in place. Real storage goes
// through rinv, complex storage through cinv.
//
// Errors: ErrNilArray, ErrNotAugmented.
func GaussJordan(aug *ndarray.Array) error {
	if aug == nil {
		return linalgErrorf(opGaussJordan, ErrNilArray)
	}
	if aug.Ndim() != 2 || aug.Cols() != 2*aug.Rows() {
		return fmt.Errorf("%s: shape %v: %w", opGaussJordan, []int(aug.Shape()), ErrNotAugmented)
	}

	n := aug.Rows()
	switch st := aug.Storage().(type) {
	case ndarray.ComplexStorage:
		cinv(st.Re, st.Im, n)
	case ndarray.RealStorage:
		if fb, ok := st.Re.(ndarray.Float64Buffer); ok {
			rinvFloat64(fb, n)
		} else {
			rinv(st.Re, n)
		}
	}

	return nil
}

// Solve returns x = Inv(a) @ b.
//
// Errors: ErrNilArray, ErrNotSquare, ndarray.ErrDimensionMismatch.
func Solve(a, b *ndarray.Array) (*ndarray.Array, error) {
	if b == nil {
		return nil, linalgErrorf(opSolve, ErrNilArray)
	}
	inv, err := Inv(a)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	x, err := ndarray.MatMul(inv, b)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return x, nil
}

func checkSquare(tag string, a *ndarray.Array) error {
	if a == nil {
		return linalgErrorf(tag, ErrNilArray)
	}
	if a.Ndim() != 2 || a.Rows() != a.Cols() {
		return fmt.Errorf("%s: shape %v: %w", tag, []int(a.Shape()), ErrNotSquare)
	}

	return nil
}
