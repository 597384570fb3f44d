// SPDX-License-Identifier: MIT
// Package ndarray - reshape, stack and split helpers.
//
// All helpers copy; results never share buffers with their inputs.
// Stack helpers require a common dtype; split helpers require an axis
// divisible by the section count.

package ndarray

import "fmt"

// Reshape returns a copy of a with a new shape of the same size.
// Errors: ErrBadShape (invalid shape or size mismatch).
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf(opReshape, err)
	}
	if shape.Size() != a.Size() {
		return nil, fmt.Errorf("%s: %v to %v: %w", opReshape, []int(a.shape), []int(shape), ErrBadShape)
	}

	return &Array{dtype: a.dtype, shape: shape.clone(), store: cloneStorage(a.store)}, nil
}

// copyRun copies n elements of both components from src[srcOff:] to dst[dstOff:].
func copyRun(dst *Array, dstOff int, src *Array, srcOff, n int) {
	dRe, dIm := parts(dst.store)
	sRe, sIm := parts(src.store)
	for k := 0; k < n; k++ {
		dRe.SetAt(dstOff+k, sRe.At(srcOff+k))
		if dIm != nil && sIm != nil {
			dIm.SetAt(dstOff+k, sIm.At(srcOff+k))
		}
	}
}

// HSplit partitions a into n equal parts: along elements for 1-D input,
// along columns for 2-D input.
// Errors: ErrBadShape (n <= 0), ErrNotDivisible.
func HSplit(a *Array, n int) ([]*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opHSplit, ErrNilArray)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: %d sections: %w", opHSplit, n, ErrBadShape)
	}
	axis := a.shape[len(a.shape)-1]
	if axis%n != 0 {
		return nil, fmt.Errorf("%s: axis %d into %d: %w", opHSplit, axis, n, ErrNotDivisible)
	}
	width := axis / n
	out := make([]*Array, n)

	if len(a.shape) == 1 {
		for s := 0; s < n; s++ {
			part := newArray(Shape{width}, a.dtype)
			copyRun(part, 0, a, s*width, width)
			out[s] = part
		}
		return out, nil
	}

	rows := a.shape[0]
	for s := 0; s < n; s++ {
		part := newArray(Shape{rows, width}, a.dtype)
		for i := 0; i < rows; i++ {
			copyRun(part, i*width, a, i*axis+s*width, width)
		}
		out[s] = part
	}

	return out, nil
}

// VSplit partitions the rows of a 2-D array into n equal parts.
// Errors: ErrBadShape (1-D input or n <= 0), ErrNotDivisible.
func VSplit(a *Array, n int) ([]*Array, error) {
	if a == nil {
		return nil, arrayErrorf(opVSplit, ErrNilArray)
	}
	if len(a.shape) != 2 || n <= 0 {
		return nil, fmt.Errorf("%s: shape %v into %d: %w", opVSplit, []int(a.shape), n, ErrBadShape)
	}
	rows, cols := a.shape[0], a.shape[1]
	if rows%n != 0 {
		return nil, fmt.Errorf("%s: %d rows into %d: %w", opVSplit, rows, n, ErrNotDivisible)
	}
	height := rows / n
	out := make([]*Array, n)
	for s := 0; s < n; s++ {
		part := newArray(Shape{height, cols}, a.dtype)
		copyRun(part, 0, a, s*height*cols, height*cols)
		out[s] = part
	}

	return out, nil
}

// checkParts validates a non-empty list of non-nil arrays sharing one dtype.
func checkParts(opTag string, arrays []*Array) error {
	if len(arrays) == 0 {
		return fmt.Errorf("%s: no arrays: %w", opTag, ErrBadShape)
	}
	for i, p := range arrays {
		if p == nil {
			return fmt.Errorf("%s: part %d: %w", opTag, i, ErrNilArray)
		}
		if p.dtype != arrays[0].dtype {
			return fmt.Errorf("%s: part %d is %s, want %s: %w", opTag, i, p.dtype, arrays[0].dtype, ErrDTypeMismatch)
		}
	}

	return nil
}

// HStack concatenates along columns (2-D) or elements (1-D).
// All arrays share dtype and rank; 2-D arrays share the row count.
// Errors: ErrBadShape (no arrays), ErrDTypeMismatch, ErrDimensionMismatch.
func HStack(arrays ...*Array) (*Array, error) {
	if err := checkParts(opHStack, arrays); err != nil {
		return nil, err
	}
	rank := len(arrays[0].shape)
	rows := arrays[0].shape[0]
	total := 0
	for i, p := range arrays {
		if len(p.shape) != rank || (rank == 2 && p.shape[0] != rows) {
			return nil, fmt.Errorf("%s: part %d shape %v: %w", opHStack, i, []int(p.shape), ErrDimensionMismatch)
		}
		total += p.shape[rank-1]
	}

	if rank == 1 {
		out := newArray(Shape{total}, arrays[0].dtype)
		off := 0
		for _, p := range arrays {
			copyRun(out, off, p, 0, p.shape[0])
			off += p.shape[0]
		}
		return out, nil
	}

	out := newArray(Shape{rows, total}, arrays[0].dtype)
	off := 0
	for _, p := range arrays {
		w := p.shape[1]
		for i := 0; i < rows; i++ {
			copyRun(out, i*total+off, p, i*w, w)
		}
		off += w
	}

	return out, nil
}

// VStack concatenates along rows. A 1-D part of length n counts as a
// 1×n row, so stacking 1-D arrays of equal length builds a matrix.
// Errors: ErrBadShape (no arrays), ErrDTypeMismatch, ErrDimensionMismatch.
func VStack(arrays ...*Array) (*Array, error) {
	if err := checkParts(opVStack, arrays); err != nil {
		return nil, err
	}
	cols := arrays[0].shape[len(arrays[0].shape)-1]
	rows := 0
	for i, p := range arrays {
		if p.shape[len(p.shape)-1] != cols {
			return nil, fmt.Errorf("%s: part %d shape %v: %w", opVStack, i, []int(p.shape), ErrDimensionMismatch)
		}
		if len(p.shape) == 1 {
			rows++
		} else {
			rows += p.shape[0]
		}
	}

	out := newArray(Shape{rows, cols}, arrays[0].dtype)
	off := 0
	for _, p := range arrays {
		copyRun(out, off, p, 0, p.Size())
		off += p.Size()
	}

	return out, nil
}
