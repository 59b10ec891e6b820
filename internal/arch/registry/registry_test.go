package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-sbc/internal/cpu"
)

func newTestRegistry() *OpRegistry {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	return reg
}

func TestLookupPrefersHigherPriority(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"avx2 host", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"sse2 host", cpu.Features{HasSSE2: true}, "sse2"},
		{"no simd", cpu.Features{}, "generic"},
		{"neon host", cpu.Features{HasNEON: true}, "generic"},
		{"forced generic", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			require.NotNil(t, entry)
			assert.Equal(t, tt.want, entry.Name)
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	assert.Nil(t, reg.Lookup(cpu.Features{HasSSE2: true}))
}

func TestSupportedOrder(t *testing.T) {
	reg := newTestRegistry()

	var names []string
	for _, e := range reg.Supported(cpu.Features{HasSSE2: true, HasAVX2: true}) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"avx2", "sse2", "generic"}, names)

	assert.Len(t, reg.Supported(cpu.Features{ForceGeneric: true, HasAVX2: true}), 1)
}

func TestListEntriesAndReset(t *testing.T) {
	reg := newTestRegistry()
	entries := reg.ListEntries()
	assert.Len(t, entries, 3)

	entries[0].Name = "mutated"
	assert.NotEqual(t, "mutated", reg.ListEntries()[0].Name)

	reg.Reset()
	assert.Empty(t, reg.ListEntries())
	assert.Nil(t, reg.Lookup(cpu.Features{}))
}
