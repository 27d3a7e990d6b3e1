// Package vecmath provides the scalar element-wise kernels backing the
// hot loops of this module. The exported algo-vecmath module covers the
// SIMD-dispatched surface for public APIs; this internal copy keeps the
// inner loops free of cross-module calls.
package vecmath

import "math"

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if either slice is empty. Only the minimum length of the
// two slices is used.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// Max returns the largest element in x.
// Returns 0 for an empty slice.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	m := x[0]
	for i := 1; i < len(x); i++ {
		if x[i] > m {
			m = x[i]
		}
	}
	return m
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	m := math.Abs(x[0])
	for i := 1; i < len(x); i++ {
		if v := math.Abs(x[i]); v > m {
			m = v
		}
	}
	return m
}

// AbsInPlace replaces each element with its absolute value: x[i] = |x[i]|.
func AbsInPlace(x []float64) {
	for i := range x {
		x[i] = math.Abs(x[i])
	}
}

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	for i := range dst {
		dst[i] *= scale
	}
}

// AddScalarInPlace adds a scalar to each element in-place: dst[i] += c.
func AddScalarInPlace(dst []float64, c float64) {
	for i := range dst {
		dst[i] += c
	}
}
