// SPDX-License-Identifier: MIT

package ndarray

// Storage is the sealed real/complex variant backing an Array.
// It is implemented only by RealStorage and ComplexStorage; kernels
// dispatch on it with a type switch. A real array can never carry an
// imaginary buffer.
type Storage interface {
	// Len returns the element count (length of each buffer).
	Len() int

	isStorage()
}

// RealStorage backs int32, float32 and float64 arrays.
type RealStorage struct {
	Re Buffer
}

// ComplexStorage backs complex64 and complex128 arrays.
// Re and Im always share length and element type.
type ComplexStorage struct {
	Re, Im Buffer
}

func (s RealStorage) Len() int    { return s.Re.Len() }
func (s ComplexStorage) Len() int { return s.Re.Len() }

func (RealStorage) isStorage()    {}
func (ComplexStorage) isStorage() {}

// newStorage allocates zeroed storage of n elements for dtype d.
func newStorage(d DType, n int) Storage {
	if d.IsComplex() {
		return ComplexStorage{
			Re: newBuffer(d.Component(), n),
			Im: newBuffer(d.Component(), n),
		}
	}

	return RealStorage{Re: newBuffer(d, n)}
}

// cloneStorage deep-copies s.
func cloneStorage(s Storage) Storage {
	switch st := s.(type) {
	case ComplexStorage:
		return ComplexStorage{Re: st.Re.clone(), Im: st.Im.clone()}
	case RealStorage:
		return RealStorage{Re: st.Re.clone()}
	}

	return nil
}

// parts returns the real buffer and the imaginary buffer (nil for real storage).
func parts(s Storage) (re, im Buffer) {
	switch st := s.(type) {
	case ComplexStorage:
		return st.Re, st.Im
	case RealStorage:
		return st.Re, nil
	}

	return nil, nil
}
