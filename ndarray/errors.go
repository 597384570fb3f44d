// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every exported operation returns one of these sentinels, optionally wrapped
// with an operation tag (see arrayErrorf). Tests match them via errors.Is.
// Panics are reserved for programmer errors in option constructors.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has the wrong rank (not 1 or 2),
	// a negative extent, or does not match the requested element count.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrUnknownDType is returned by ParseDType for names outside the closed set.
	ErrUnknownDType = errors.New("ndarray: unknown dtype")

	// ErrDTypeMismatch indicates parts of a stack/split do not share a dtype.
	ErrDTypeMismatch = errors.New("ndarray: dtype mismatch")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add on different shapes or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrOutOfRange indicates a scalar index outside the axis extent.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadSlice indicates a slice key with a non-positive step.
	ErrBadSlice = errors.New("ndarray: invalid slice")

	// ErrKeyArity indicates the number of keys differs from the array rank.
	ErrKeyArity = errors.New("ndarray: wrong number of keys")

	// ErrRagged indicates nested input whose rows differ in length.
	ErrRagged = errors.New("ndarray: ragged nested data")

	// ErrUnsupportedData indicates nested input of an unsupported Go type.
	ErrUnsupportedData = errors.New("ndarray: unsupported data type")

	// ErrNotDivisible indicates an HSplit/VSplit whose axis is not a multiple of n.
	ErrNotDivisible = errors.New("ndarray: axis not divisible by section count")

	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrScalarSelection indicates SetArray was called with an all-scalar key.
	ErrScalarSelection = errors.New("ndarray: selection is a single element")
)

// Operation tags used when wrapping sentinels.
const (
	opNew       = "New"
	opEmpty     = "Empty"
	opIdentity  = "Identity"
	opAsType    = "AsType"
	opGet       = "Get"
	opSet       = "Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opMatMul    = "MatMul"
	opReshape   = "Reshape"
	opHSplit    = "HSplit"
	opVSplit    = "VSplit"
	opHStack    = "HStack"
	opVStack    = "VStack"
	opAllClose  = "AllClose"
	opTranspose = "Transpose"
)

// arrayErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
