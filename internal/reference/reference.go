// Package reference implements the floating-point A2DP analysis filterbank
// and the quality measures used to check the fixed-point kernels against it.
package reference

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-sbc/internal/simdops"
	"github.com/tphakala/go-sbc/internal/tables"
)

// hops is the number of 2M-sample groups spanned by the window.
const hops = 5

// fixedScale converts kernel output to subband units.
const fixedScale = 1.0 / (1 << tables.CosScale)

// Analyzer is a float64 analysis filterbank for one channel:
//
//	Y[i] = sum_j C[i+2Mj] * X[i+2Mj]
//	S[k] = sum_i cos((k+0.5)(i-M/2)pi/M) * Y[i]
//
// where X[0] is the newest sample and C is tables.Prototype, the low-pass
// prototype with every other 2M-tap group negated.
type Analyzer struct {
	m   int
	ops *simdops.Ops

	// window and taps are stored i-major: entry i*hops+j is tap i+2Mj.
	window []float64
	taps   []float64
	x      []float64

	y   *mat.VecDense
	mod *mat.Dense
	out *mat.VecDense
}

// New creates an analyzer for 4 or 8 subbands.
func New(subbands int) *Analyzer {
	m := subbands
	proto := tables.Prototype(m)

	a := &Analyzer{
		m:      m,
		ops:    simdops.Float64Ops(),
		window: make([]float64, len(proto)),
		taps:   make([]float64, len(proto)),
		x:      make([]float64, len(proto)),
		y:      mat.NewVecDense(2*m, nil),
		mod:    mat.NewDense(m, 2*m, nil),
		out:    mat.NewVecDense(m, nil),
	}
	for i := range 2 * m {
		for j := range hops {
			a.window[i*hops+j] = proto[i+2*m*j]
		}
	}
	for k := range m {
		for i := range 2 * m {
			a.mod.Set(k, i, math.Cos((float64(k)+0.5)*(float64(i)-float64(m)/2)*math.Pi/float64(m)))
		}
	}
	return a
}

// Subbands returns M.
func (a *Analyzer) Subbands() int {
	return a.m
}

// Block consumes M samples in time order and returns the M subband values.
func (a *Analyzer) Block(in []int16) []float64 {
	m := a.m
	copy(a.x[m:], a.x[:len(a.x)-m])
	for i := range m {
		a.x[m-1-i] = float64(in[i])
	}

	for i := range 2 * m {
		for j := range hops {
			a.taps[i*hops+j] = a.x[i+2*m*j]
		}
		row := i * hops
		a.y.SetVec(i, a.ops.DotProductUnsafe(a.window[row:row+hops], a.taps[row:row+hops]))
	}

	a.out.MulVec(a.mod, a.y)
	return append([]float64(nil), a.out.RawVector().Data...)
}

// Run feeds a signal block by block and returns the subband values of all
// complete blocks, concatenated.
func (a *Analyzer) Run(signal []int16) []float64 {
	var out []float64
	for i := 0; i+a.m <= len(signal); i += a.m {
		out = append(out, a.Block(signal[i:i+a.m])...)
	}
	return out
}

// Reset clears the history.
func (a *Analyzer) Reset() {
	clear(a.x)
}

// ToFloat converts fixed-point kernel output to subband units.
func ToFloat(fixed []int32) []float64 {
	out := make([]float64, len(fixed))
	for i, v := range fixed {
		out[i] = float64(v)
	}
	simdops.Float64Ops().Scale(out, out, fixedScale)
	return out
}
