// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by linalg operations.
var (
	// ErrNotSquare is returned when Inv, Augment or Solve receive a matrix
	// that is not 2-D with rows == cols.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrNotAugmented is returned by GaussJordan when the input is not n×2n.
	ErrNotAugmented = errors.New("linalg: matrix is not n×2n augmented")

	// ErrNilArray is returned when a nil array is passed in.
	ErrNilArray = errors.New("linalg: nil array")
)

const (
	opInv         = "Inv"
	opAugment     = "Augment"
	opGaussJordan = "GaussJordan"
	opSolve       = "Solve"
)

func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
