// SPDX-License-Identifier: MIT
// Package ndarray - basic indexing restricted to rank ≤ 2.
//
// A key is either a scalar index or a half-open slice (start, stop, step).
// Rules:
//   - a 1-D array takes one key, a 2-D array takes two (row, col);
//   - all-scalar keys select one element, returned as a scalar;
//   - exactly one slice selects a 1-D run along the sliced axis, the scalar
//     axis held fixed;
//   - two slices select a 2-D block, row slice outer, column slice inner.
//
// Slice bounds: an open stop clamps to the extent; a negative start/stop is
// offset by the extent once; both are then clamped to [0, extent]. The
// selected count is ceil((stop-start)/step), zero when stop <= start.

package ndarray

import "fmt"

// Key selects along one axis.
type Key struct {
	slice    bool
	index    int
	start    int
	stop     int
	step     int
	openStop bool
}

// Index selects a single position; negative values count from the end.
func Index(i int) Key { return Key{index: i} }

// Slice selects [start, stop) with the given step.
func Slice(start, stop, step int) Key {
	return Key{slice: true, start: start, stop: stop, step: step}
}

// SliceFrom selects [start, extent) with the given step (null stop).
func SliceFrom(start, step int) Key {
	return Key{slice: true, start: start, step: step, openStop: true}
}

// All selects the whole axis.
func All() Key { return SliceFrom(0, 1) }

// IsSlice reports whether the key is a slice.
func (k Key) IsSlice() bool { return k.slice }

func (k Key) String() string {
	if !k.slice {
		return fmt.Sprintf("%d", k.index)
	}
	if k.openStop {
		return fmt.Sprintf("%d::%d", k.start, k.step)
	}

	return fmt.Sprintf("%d:%d:%d", k.start, k.stop, k.step)
}

// span is a resolved key: count positions start, start+step, ...
type span struct {
	start, count, step int
	scalar             bool
}

// resolve turns k into a span over an axis of the given extent.
func (k Key) resolve(extent int) (span, error) {
	if !k.slice {
		i := k.index
		if i < 0 {
			i += extent
		}
		if i < 0 || i >= extent {
			return span{}, fmt.Errorf("index %d (extent %d): %w", k.index, extent, ErrOutOfRange)
		}
		return span{start: i, count: 1, step: 1, scalar: true}, nil
	}
	if k.step <= 0 {
		return span{}, fmt.Errorf("slice %s: step %d: %w", k, k.step, ErrBadSlice)
	}
	start, stop := k.start, k.stop
	if k.openStop {
		stop = extent
	} else if stop < 0 {
		stop += extent
	}
	if start < 0 {
		start += extent
	}
	start = clamp(start, 0, extent)
	stop = clamp(stop, 0, extent)
	count := 0
	if stop > start {
		count = (stop - start + k.step - 1) / k.step
	}

	return span{start: start, count: count, step: k.step}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Item is the result of Get: either a scalar or an Array.
type Item struct {
	arr    *Array
	scalar complex128
}

// IsScalar reports whether the selection was a single element.
func (it Item) IsScalar() bool { return it.arr == nil }

// Scalar returns the selected element; real dtypes report a zero imaginary part.
func (it Item) Scalar() complex128 { return it.scalar }

// Array returns the selected sub-array, or nil for a scalar selection.
func (it Item) Array() *Array { return it.arr }

// selection resolves keys into flat source positions and the result shape
// (nil shape for a single element).
func (a *Array) selection(keys []Key) ([]int, Shape, error) {
	if len(keys) != len(a.shape) {
		return nil, nil, fmt.Errorf("%d keys for rank %d: %w", len(keys), len(a.shape), ErrKeyArity)
	}
	if len(a.shape) == 1 {
		s, err := keys[0].resolve(a.shape[0])
		if err != nil {
			return nil, nil, err
		}
		pos := make([]int, s.count)
		for i := range pos {
			pos[i] = s.start + i*s.step
		}
		if s.scalar {
			return pos, nil, nil
		}
		return pos, Shape{s.count}, nil
	}

	rs, err := keys[0].resolve(a.shape[0])
	if err != nil {
		return nil, nil, err
	}
	cs, err := keys[1].resolve(a.shape[1])
	if err != nil {
		return nil, nil, err
	}
	cols := a.shape[1]
	pos := make([]int, 0, rs.count*cs.count)
	for i := 0; i < rs.count; i++ {
		row := rs.start + i*rs.step
		for j := 0; j < cs.count; j++ {
			pos = append(pos, row*cols+cs.start+j*cs.step)
		}
	}
	switch {
	case rs.scalar && cs.scalar:
		return pos, nil, nil
	case rs.scalar:
		return pos, Shape{cs.count}, nil
	case cs.scalar:
		return pos, Shape{rs.count}, nil
	}

	return pos, Shape{rs.count, cs.count}, nil
}

// Get reads the selection described by keys. A copy is returned for
// array selections; the source is never aliased.
//
// Errors: ErrKeyArity, ErrOutOfRange, ErrBadSlice.
func (a *Array) Get(keys ...Key) (Item, error) {
	pos, shape, err := a.selection(keys)
	if err != nil {
		return Item{}, arrayErrorf(opGet, err)
	}
	if shape == nil {
		return Item{scalar: a.value(pos[0])}, nil
	}
	out := newArray(shape, a.dtype)
	srcRe, srcIm := parts(a.store)
	dstRe, dstIm := parts(out.store)
	for k, p := range pos {
		dstRe.SetAt(k, srcRe.At(p))
		if srcIm != nil {
			dstIm.SetAt(k, srcIm.At(p))
		}
	}

	return Item{arr: out}, nil
}

// SetScalar writes v to every selected element (one element for all-scalar keys).
func (a *Array) SetScalar(v complex128, keys ...Key) error {
	pos, _, err := a.selection(keys)
	if err != nil {
		return arrayErrorf(opSet, err)
	}
	for _, p := range pos {
		a.setValue(p, v)
	}

	return nil
}

// SetArray writes the elements of src, in row-major order, to the selection.
//
// Errors: ErrScalarSelection for all-scalar keys, ErrDimensionMismatch when
// src.Size() differs from the selection size, plus key errors.
func (a *Array) SetArray(src *Array, keys ...Key) error {
	if src == nil {
		return arrayErrorf(opSet, ErrNilArray)
	}
	pos, shape, err := a.selection(keys)
	if err != nil {
		return arrayErrorf(opSet, err)
	}
	if shape == nil {
		return arrayErrorf(opSet, ErrScalarSelection)
	}
	if src.Size() != len(pos) {
		return fmt.Errorf("%s: source size %d, selection size %d: %w", opSet, src.Size(), len(pos), ErrDimensionMismatch)
	}
	for k, p := range pos {
		a.setValue(p, src.value(k))
	}

	return nil
}

// At reads a single element by integer indices.
func (a *Array) At(idx ...int) (complex128, error) {
	it, err := a.Get(indexKeys(idx)...)
	if err != nil {
		return 0, err
	}

	return it.Scalar(), nil
}

// SetAt writes a single element by integer indices.
func (a *Array) SetAt(v complex128, idx ...int) error {
	return a.SetScalar(v, indexKeys(idx)...)
}

func indexKeys(idx []int) []Key {
	keys := make([]Key, len(idx))
	for i, v := range idx {
		keys[i] = Index(v)
	}

	return keys
}
