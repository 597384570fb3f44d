// SPDX-License-Identifier: MIT

package fft

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FFT operations.
var (
	// ErrNotPowerOfTwo is returned when a plan size is not an exact power of two
	// in [1, 2^31].
	ErrNotPowerOfTwo = errors.New("fft: size is not a power of two")

	// ErrNotSquareMatrix is returned by FFT2/IFFT2 for non-square or 1-D input.
	ErrNotSquareMatrix = errors.New("fft: matrix is not square")

	// ErrLengthMismatch is returned when buffers passed to a Plan differ from its size.
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")

	// ErrNilArray is returned when a nil array is passed to a transform.
	ErrNilArray = errors.New("fft: nil array")
)

const (
	opNewPlan = "NewPlan"
	opForward = "Forward"
	opFFT     = "FFT"
	opIFFT    = "IFFT"
	opFFT2    = "FFT2"
	opIFFT2   = "IFFT2"
)

func fftErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
