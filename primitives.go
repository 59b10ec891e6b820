package sbc

import (
	"fmt"

	simdcpu "github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-sbc/internal/arch/generic"
	"github.com/tphakala/go-sbc/internal/arch/registry"
	"github.com/tphakala/go-sbc/internal/cpu"
	"github.com/tphakala/go-sbc/internal/filterbank"
)

// Analyze4Func transforms 4 blocks of 4 samples. pcm holds 16 new samples in
// time order, x is the 80-element history view at the session position, and
// block b lands at out[b*outStride : b*outStride+4].
type Analyze4Func = filterbank.Analyze4Func

// Analyze8Func transforms 4 blocks of 8 samples; x is a 160-element view.
type Analyze8Func = filterbank.Analyze8Func

// Primitives is a session's dispatch table. It is filled once by
// InitPrimitives and never modified.
type Primitives struct {
	Name      string
	SIMDLevel string
	Analyze4  Analyze4Func
	Analyze8  Analyze8Func
}

// InitPrimitives selects the fastest backend the host supports. With
// enableSIMD false, or when no vectorized backend applies, both slots hold
// the portable kernel.
func InitPrimitives(enableSIMD bool) Primitives {
	features := cpu.DetectFeatures()
	if !enableSIMD {
		features.ForceGeneric = true
	}
	return primitivesFor(features)
}

func primitivesFor(features cpu.Features) Primitives {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		return Primitives{
			Name:      generic.Name,
			SIMDLevel: cpu.SIMDNone.String(),
			Analyze4:  generic.Analyze4,
			Analyze8:  generic.Analyze8,
		}
	}
	return fromEntry(entry)
}

func fromEntry(entry *registry.OpEntry) Primitives {
	return Primitives{
		Name:      entry.Name,
		SIMDLevel: entry.SIMDLevel.String(),
		Analyze4:  entry.Analyze4,
		Analyze8:  entry.Analyze8,
	}
}

// AvailablePrimitives lists every backend the host can run, fastest first.
// The portable kernel is always last.
func AvailablePrimitives() []Primitives {
	entries := registry.Global.Supported(cpu.DetectFeatures())
	out := make([]Primitives, 0, len(entries))
	for i := range entries {
		out = append(out, fromEntry(&entries[i]))
	}
	return out
}

// PrimitivesByName returns the named backend if the host supports it.
func PrimitivesByName(name string) (Primitives, error) {
	for _, p := range AvailablePrimitives() {
		if p.Name == name {
			return p, nil
		}
	}
	return Primitives{}, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// CPUInfo summarizes the host's SIMD capabilities.
func CPUInfo() string {
	return simdcpu.Info()
}
