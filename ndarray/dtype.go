// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// DType tags the element storage of an Array.
// The set is closed; the zero value is not a valid dtype.
type DType int

const (
	_ DType = iota
	Int32
	Float32
	Float64
	Complex64  // pair of float32 buffers
	Complex128 // pair of float64 buffers
)

var dtypeNames = [...]string{
	Int32:      "int32",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// Valid reports whether d is one of the five supported dtypes.
func (d DType) Valid() bool { return d >= Int32 && d <= Complex128 }

// String returns the canonical lowercase name ("float64", "complex64", ...).
func (d DType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DType(%d)", int(d))
	}

	return dtypeNames[d]
}

// ParseDType maps a canonical dtype name back to its DType.
func ParseDType(name string) (DType, error) {
	for d := Int32; d <= Complex128; d++ {
		if dtypeNames[d] == name {
			return d, nil
		}
	}

	return 0, fmt.Errorf("ParseDType(%q): %w", name, ErrUnknownDType)
}

// IsComplex reports whether arrays of this dtype carry an imaginary buffer.
func (d DType) IsComplex() bool { return d == Complex64 || d == Complex128 }

// Component returns the dtype of each backing buffer:
// complex64 → float32, complex128 → float64, real dtypes → themselves.
func (d DType) Component() DType {
	switch d {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return d
	}
}

// ComplexOf returns the complex dtype able to hold values of d.
// float32 → complex64; int32 and float64 → complex128; complex dtypes are unchanged.
func (d DType) ComplexOf() DType {
	switch d {
	case Float32, Complex64:
		return Complex64
	default:
		return Complex128
	}
}

// rank orders real component dtypes by precision.
func (d DType) rank() int {
	switch d.Component() {
	case Int32:
		return 0
	case Float32:
		return 1
	default:
		return 2
	}
}

// Promote returns the result dtype when arrays of dtypes a and b are combined.
//
//	int32 < float32 < float64 for real operands;
//	complex64 < complex128 for complex operands;
//	a real/complex mix yields the complex dtype whose component holds both,
//	so int32 with complex64 gives complex128 (float32 cannot hold every int32).
//
// Real operands follow the linear order, so int32 with float32 gives float32
// (numpy would widen to float64).
func Promote(a, b DType) DType {
	if a == b {
		return a
	}
	if !a.IsComplex() && !b.IsComplex() {
		if a.rank() >= b.rank() {
			return a
		}
		return b
	}
	// At least one side is complex.
	if a == Int32 || b == Int32 || a.Component() == Float64 || b.Component() == Float64 {
		return Complex128
	}

	return Complex64
}
