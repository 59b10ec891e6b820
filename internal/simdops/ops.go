// Package simdops is the table of vectorized float64 routines used by the
// reference filterbank and the quality measures.
package simdops

import "github.com/tphakala/simd/f64"

// Ops holds the float64 kernels. Callers fetch the table once and call
// through it in their inner loops.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Both slices must have the same length.
	DotProductUnsafe func(a, b []float64) float64

	// Scale multiplies each element by s: dst[i] = a[i] * s.
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Scale:            f64.Scale,
	Sum:              f64.Sum,
}

// Float64Ops returns the float64 operations.
func Float64Ops() *Ops {
	return &ops64
}
