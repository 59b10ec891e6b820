package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFeatures_Architecture(t *testing.T) {
	ResetDetection()
	t.Cleanup(ResetDetection)

	f := DetectFeatures()
	assert.Equal(t, runtime.GOARCH, f.Architecture)
	if runtime.GOARCH == "amd64" {
		assert.True(t, f.HasSSE2, "SSE2 is baseline on amd64")
	}
}

func TestDetectFeatures_Cached(t *testing.T) {
	ResetDetection()
	t.Cleanup(ResetDetection)

	assert.Equal(t, DetectFeatures(), DetectFeatures())
}

func TestSetForcedFeatures(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})
	assert.True(t, HasAVX2())
	assert.True(t, HasSSE2())

	SetForcedFeatures(Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true})
	assert.False(t, HasAVX2())
	assert.False(t, HasSSE2())
}

func TestNoSIMDEnv(t *testing.T) {
	t.Setenv(NoSIMDEnv, "1")
	ResetDetection()
	t.Cleanup(ResetDetection)

	f := DetectFeatures()
	require.True(t, f.ForceGeneric)
	assert.True(t, Supports(f, SIMDNone))
	assert.False(t, Supports(f, SIMDSSE2))
}

func TestNoSIMDValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"true", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, noSIMD(tt.value), "value %q", tt.value)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"generic always", Features{}, SIMDNone, true},
		{"sse2 present", Features{HasSSE2: true}, SIMDSSE2, true},
		{"sse2 absent", Features{}, SIMDSSE2, false},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx2 absent", Features{HasSSE2: true}, SIMDAVX2, false},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"unknown level", Features{HasAVX2: true}, SIMDLevel(99), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Supports(tt.features, tt.level))
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	assert.Equal(t, "None", SIMDNone.String())
	assert.Equal(t, "SSE2", SIMDSSE2.String())
	assert.Equal(t, "AVX2", SIMDAVX2.String())
	assert.Equal(t, "NEON", SIMDNEON.String())
	assert.Equal(t, "Unknown", SIMDLevel(42).String())
}
