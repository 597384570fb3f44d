// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for array factories.
//
// Design goals:
//   - No global state; every factory resolves its own Options via gatherOptions.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error), never on user data.

package ndarray

// DefaultDType is the dtype used by factories when WithDType is not given.
const DefaultDType = Float64

const panicDTypeInvalid = "ndarray: WithDType: dtype must be one of int32, float32, float64, complex64, complex128"

// Option mutates factory options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	dtype DType
}

// WithDType selects the element dtype of the constructed array.
// Panics on an invalid DType.
func WithDType(d DType) Option {
	if !d.Valid() {
		panic(panicDTypeInvalid)
	}

	return func(o *Options) { o.dtype = d }
}

func defaultOptions() Options {
	return Options{dtype: DefaultDType}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
