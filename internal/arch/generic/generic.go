// Package generic provides the portable analysis kernels. They define the
// fixed-point result every other backend must reproduce exactly.
package generic

import (
	"math"

	"github.com/tphakala/go-sbc/internal/arch/registry"
	"github.com/tphakala/go-sbc/internal/cpu"
	"github.com/tphakala/go-sbc/internal/filterbank"
	"github.com/tphakala/go-sbc/internal/tables"
)

// Name identifies the portable backend.
const Name = "generic"

const (
	round4 = 1 << (tables.ProtoScale4 - 1)
	round8 = 1 << (tables.ProtoScale8 - 1)
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Analyze4:  Analyze4,
		Analyze8:  Analyze8,
	})
}

// Analyze4 transforms 4 blocks of 4 samples with the portable kernel.
func Analyze4(pcm *[filterbank.Input4]int16, x *[filterbank.Span4]int16, out []int32, outStride int) {
	filterbank.Analyze4(AnalyzeFour, pcm, x, out, outStride)
}

// Analyze8 transforms 4 blocks of 8 samples with the portable kernel.
func Analyze8(pcm *[filterbank.Input8]int16, x *[filterbank.Span8]int16, out []int32, outStride int) {
	filterbank.Analyze8(AnalyzeEight, pcm, x, out, outStride)
}

// AnalyzeFour filters one 4-band window.
//
// Lane l accumulates taps 2l and 2l+1 of every 8-tap hop on top of the
// rounding constant. The sum is shifted right by SCALE4 and saturated to
// int16; the four lane values then pass through the modulation rows with no
// further rounding. Integer overflow wraps, as in a 16x16+16x16 multiply-add.
func AnalyzeFour(in *[filterbank.Window4]int16, out *[4]int32, consts *[tables.Len4]int16) {
	var acc [4]int32
	for l := range acc {
		acc[l] = round4
	}
	for hop := 0; hop < filterbank.Window4; hop += 8 {
		for l := range acc {
			i := hop + 2*l
			acc[l] += int32(in[i])*int32(consts[i]) + int32(in[i+1])*int32(consts[i+1])
		}
	}

	var t [4]int32
	for l := range t {
		t[l] = sat16(acc[l] >> tables.ProtoScale4)
	}

	cos := consts[filterbank.Window4:]
	for k := range out {
		var s int32
		for p := range 2 {
			base := p*8 + 2*k
			s += t[2*p]*int32(cos[base]) + t[2*p+1]*int32(cos[base+1])
		}
		out[k] = s
	}
}

// AnalyzeEight filters one 8-band window; see AnalyzeFour.
func AnalyzeEight(in *[filterbank.Window8]int16, out *[8]int32, consts *[tables.Len8]int16) {
	var acc [8]int32
	for l := range acc {
		acc[l] = round8
	}
	for hop := 0; hop < filterbank.Window8; hop += 16 {
		for l := range acc {
			i := hop + 2*l
			acc[l] += int32(in[i])*int32(consts[i]) + int32(in[i+1])*int32(consts[i+1])
		}
	}

	var t [8]int32
	for l := range t {
		t[l] = sat16(acc[l] >> tables.ProtoScale8)
	}

	cos := consts[filterbank.Window8:]
	for k := range out {
		var s int32
		for p := range 4 {
			base := p*16 + 2*k
			s += t[2*p]*int32(cos[base]) + t[2*p+1]*int32(cos[base+1])
		}
		out[k] = s
	}
}

func sat16(v int32) int32 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return v
}
