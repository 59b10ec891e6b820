//go:build amd64 && !purego

package sse2

import (
	"github.com/tphakala/go-sbc/internal/arch/registry"
	"github.com/tphakala/go-sbc/internal/cpu"
	"github.com/tphakala/go-sbc/internal/filterbank"
	"github.com/tphakala/go-sbc/internal/tables"
)

// Name identifies the backend.
const Name = "sse2"

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Analyze4:  analyze4,
		Analyze8:  analyze8,
	})
}

//go:noescape
func analyzeFourSSE2(in *[filterbank.Window4]int16, out *[4]int32, consts *[tables.Len4]int16)

//go:noescape
func analyzeEightSSE2(in *[filterbank.Window8]int16, out *[8]int32, consts *[tables.Len8]int16)

func analyze4(pcm *[filterbank.Input4]int16, x *[filterbank.Span4]int16, out []int32, outStride int) {
	filterbank.Analyze4(analyzeFourSSE2, pcm, x, out, outStride)
}

func analyze8(pcm *[filterbank.Input8]int16, x *[filterbank.Span8]int16, out []int32, outStride int) {
	filterbank.Analyze8(analyzeEightSSE2, pcm, x, out, outStride)
}
