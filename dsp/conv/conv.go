// Package conv provides the strided valid-mode cross-correlation that the
// front-end's convolution stages are built on.
//
// Valid mode means the kernel is only placed where it fully overlaps the
// input: no padding, output length (len(x)-len(kernel))/stride + 1. The
// kernel is applied without flipping, matching the convention of learned
// convolution layers.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-sincnet/internal/vecmath"
)

// Errors returned by correlation functions.
var (
	ErrEmptyInput    = errors.New("conv: empty input")
	ErrEmptyKernel   = errors.New("conv: empty kernel")
	ErrInvalidStride = errors.New("conv: stride must be positive")
	ErrShortInput    = errors.New("conv: input shorter than kernel")
)

// OutLen returns the number of valid kernel placements for an input of n
// samples, or -1 when no complete placement fits.
func OutLen(n, kernel, stride int) int {
	if kernel < 1 || stride < 1 || n < kernel {
		return -1
	}
	return (n-kernel)/stride + 1
}

// ValidStrided correlates x with kernel over all valid placements and
// returns a new slice of length OutLen(len(x), len(kernel), stride).
func ValidStrided(x, kernel []float64, stride int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if stride < 1 {
		return nil, ErrInvalidStride
	}
	if len(x) < len(kernel) {
		return nil, ErrShortInput
	}

	out := make([]float64, OutLen(len(x), len(kernel), stride))
	ValidStridedTo(out, x, kernel, stride)
	return out, nil
}

// ValidStridedTo correlates x with kernel, writing dst[i] =
// dot(x[i*stride : i*stride+len(kernel)], kernel). dst must have length
// OutLen(len(x), len(kernel), stride); inputs are assumed validated.
func ValidStridedTo(dst, x, kernel []float64, stride int) {
	m := len(kernel)
	for i := range dst {
		off := i * stride
		dst[i] = vecmath.DotProduct(x[off:off+m], kernel)
	}
}

// ValidStridedAccumTo is ValidStridedTo with accumulation: dst[i] += dot.
// Multi-channel convolutions sum per-channel correlations into one output
// plane with repeated calls.
func ValidStridedAccumTo(dst, x, kernel []float64, stride int) {
	m := len(kernel)
	for i := range dst {
		off := i * stride
		dst[i] += vecmath.DotProduct(x[off:off+m], kernel)
	}
}
