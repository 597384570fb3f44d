// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"reflect"
)

// Number is the set of Go scalar types accepted by the typed factories.
type Number interface {
	int | int32 | int64 | float32 | float64 | complex64 | complex128
}

// FromSlice builds a 1-D array from data.
func FromSlice[T Number](data []T, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)
	a := newArray(Shape{len(data)}, o.dtype)
	for i, v := range data {
		re, im, _ := decompose(v)
		a.setValue(i, complex(re, im))
	}

	return a, nil
}

// FromRows builds a 2-D array from equal-length rows.
// Errors: ErrRagged when row lengths differ.
func FromRows[T Number](rows [][]T, opts ...Option) (*Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", opNew, i, len(r), cols, ErrRagged)
		}
	}
	o := gatherOptions(opts...)
	a := newArray(Shape{len(rows), cols}, o.dtype)
	for i, r := range rows {
		for j, v := range r {
			re, im, _ := decompose(v)
			a.setValue(i*cols+j, complex(re, im))
		}
	}

	return a, nil
}

// New builds a 1-D array from a flat sequence or a 2-D array from a
// sequence of equal-length sequences. Accepted containers are Go slices
// or arrays of Number types, []any, or [][]any holding such scalars.
// Each element is decomposed into (real, imag); non-complex values give (v, 0).
// The dtype defaults to float64; a complex input stored into a real dtype
// keeps only its real part.
//
// Errors: ErrUnsupportedData, ErrRagged.
func New(data any, opts ...Option) (*Array, error) {
	switch d := data.(type) {
	case []float64:
		return FromSlice(d, opts...)
	case [][]float64:
		return FromRows(d, opts...)
	case []int:
		return FromSlice(d, opts...)
	case [][]int:
		return FromRows(d, opts...)
	case []complex128:
		return FromSlice(d, opts...)
	case [][]complex128:
		return FromRows(d, opts...)
	}

	return newReflect(data, opts...)
}

// newReflect handles every other container shape through reflection.
func newReflect(data any, opts ...Option) (*Array, error) {
	outer := unwrap(reflect.ValueOf(data))
	if !isSequence(outer) {
		return nil, fmt.Errorf("%s: %T: %w", opNew, data, ErrUnsupportedData)
	}
	n := outer.Len()
	twoD := n > 0 && isSequence(unwrap(outer.Index(0)))

	o := gatherOptions(opts...)
	if !twoD {
		a := newArray(Shape{n}, o.dtype)
		for i := 0; i < n; i++ {
			v := unwrap(outer.Index(i))
			if !v.IsValid() {
				return nil, fmt.Errorf("%s: element %d: %w", opNew, i, ErrUnsupportedData)
			}
			re, im, ok := decompose(v.Interface())
			if !ok {
				return nil, fmt.Errorf("%s: element %d: %w", opNew, i, ErrUnsupportedData)
			}
			a.setValue(i, complex(re, im))
		}
		return a, nil
	}

	cols := unwrap(outer.Index(0)).Len()
	a := newArray(Shape{n, cols}, o.dtype)
	for i := 0; i < n; i++ {
		row := unwrap(outer.Index(i))
		if !isSequence(row) {
			return nil, fmt.Errorf("%s: row %d: %w", opNew, i, ErrUnsupportedData)
		}
		if row.Len() != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", opNew, i, row.Len(), cols, ErrRagged)
		}
		for j := 0; j < cols; j++ {
			v := unwrap(row.Index(j))
			if !v.IsValid() {
				return nil, fmt.Errorf("%s: element (%d,%d): %w", opNew, i, j, ErrUnsupportedData)
			}
			re, im, ok := decompose(v.Interface())
			if !ok {
				return nil, fmt.Errorf("%s: element (%d,%d): %w", opNew, i, j, ErrUnsupportedData)
			}
			a.setValue(i*cols+j, complex(re, im))
		}
	}

	return a, nil
}

// unwrap strips interface wrappers so []any elements expose their dynamic value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	return v
}

func isSequence(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// decompose splits a scalar into (real, imag). Non-complex numbers give
// (v, 0); ok is false for non-numeric values.
func decompose(v any) (re, im float64, ok bool) {
	switch x := v.(type) {
	case float64:
		return x, 0, true
	case int:
		return float64(x), 0, true
	case complex128:
		return real(x), imag(x), true
	case float32:
		return float64(x), 0, true
	case int32:
		return float64(x), 0, true
	case int64:
		return float64(x), 0, true
	case complex64:
		return float64(real(x)), float64(imag(x)), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), 0, true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), 0, true
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return real(c), imag(c), true
	}

	return 0, 0, false
}
