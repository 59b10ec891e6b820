package testutil

import (
	"math"
	"math/rand/v2"
)

// Ramp returns n samples start, start+step, ...
func Ramp(n int, start, step int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(start + i*step)
	}
	return s
}

// Sine returns n samples of amp*sin(omega*(offset+i)), truncated to int16.
func Sine(n int, amp, omega float64, offset int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(amp * math.Sin(omega*float64(offset+i)))
	}
	return s
}

// Noise returns n uniformly distributed full-scale samples.
func Noise(rng *rand.Rand, n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(rng.IntN(1<<16) - 1<<15)
	}
	return s
}

// Extremes returns n samples drawn from {-32768, -32767, 0, 32767}; it drives
// the kernels into saturation.
func Extremes(rng *rand.Rand, n int) []int16 {
	values := [...]int16{math.MinInt16, math.MinInt16 + 1, 0, math.MaxInt16}
	s := make([]int16, n)
	for i := range s {
		s[i] = values[rng.IntN(len(values))]
	}
	return s
}

// NewRand returns a deterministic generator for the seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Interleave merges equal-length channels into one interleaved slice.
func Interleave(channels ...[]int16) []int16 {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	out := make([]int16, n*len(channels))
	for i := range n {
		for c, ch := range channels {
			out[i*len(channels)+c] = ch[i]
		}
	}
	return out
}
