// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Shape lists the extent of each axis: {n} for 1-D, {rows, cols} for 2-D.
type Shape []int

// Size returns the product of the extents.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Validate checks rank 1 or 2 and non-negative extents.
func (s Shape) Validate() error {
	if len(s) < 1 || len(s) > 2 {
		return fmt.Errorf("shape %v: rank %d: %w", []int(s), len(s), ErrBadShape)
	}
	for _, d := range s {
		if d < 0 {
			return fmt.Errorf("shape %v: %w", []int(s), ErrBadShape)
		}
	}

	return nil
}

// Equal reports whether s and o have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

func (s Shape) clone() Shape { return append(Shape(nil), s...) }
