// SPDX-License-Identifier: MIT

package fft

// ReverseBits exposes reverseBits to the fft_test package.
var ReverseBits = reverseBits
