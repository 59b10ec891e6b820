package reference

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-sbc/internal/simdops"
)

// SNR returns the signal-to-noise ratio in dB of test against ref. Identical
// inputs give +Inf.
func SNR(ref, test []float64) float64 {
	diff := floats.SubTo(make([]float64, len(ref)), ref, test)
	noise := floats.Dot(diff, diff)
	signal := floats.Dot(ref, ref)
	if noise == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(signal/noise)
}

// MaxAbsDiff returns the largest absolute element difference.
func MaxAbsDiff(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// RMS returns the root mean square of s.
func RMS(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2) / math.Sqrt(float64(len(s)))
}

// DB converts an amplitude ratio to decibels, flooring silence at -200 dB.
func DB(v float64) float64 {
	if v <= 0 {
		return -200
	}
	return 20 * math.Log10(v)
}

// BandEnergies splits the spectrum of signal into subbands uniform bands
// between DC and Nyquist and returns each band's share of the total power.
func BandEnergies(signal []int16, subbands int) []float64 {
	seq := make([]float64, len(signal))
	for i, v := range signal {
		seq[i] = float64(v)
	}

	fft := fourier.NewFFT(len(seq))
	coeffs := fft.Coefficients(nil, seq)

	bands := make([]float64, subbands)
	for i, c := range coeffs {
		band := min(int(fft.Freq(i)*2*float64(subbands)), subbands-1)
		re, im := real(c), imag(c)
		bands[band] += re*re + im*im
	}

	if total := simdops.Float64Ops().Sum(bands); total > 0 {
		floats.Scale(1/total, bands)
	}
	return bands
}

// SubbandShares returns each subband's share of the total energy in
// interleaved subband samples.
func SubbandShares(samples []float64, subbands int) []float64 {
	shares := make([]float64, subbands)
	for i, v := range samples {
		shares[i%subbands] += v * v
	}
	if total := simdops.Float64Ops().Sum(shares); total > 0 {
		floats.Scale(1/total, shares)
	}
	return shares
}
