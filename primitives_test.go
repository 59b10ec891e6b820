package sbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-sbc/internal/arch/generic"
	"github.com/tphakala/go-sbc/internal/cpu"
	"github.com/tphakala/go-sbc/internal/filterbank"
	"github.com/tphakala/go-sbc/internal/testutil"
)

func TestInitPrimitives_Generic(t *testing.T) {
	p := InitPrimitives(false)
	assert.Equal(t, generic.Name, p.Name)
	assert.Equal(t, cpu.SIMDNone.String(), p.SIMDLevel)
	require.NotNil(t, p.Analyze4)
	require.NotNil(t, p.Analyze8)
}

func TestInitPrimitives_SelectsFastest(t *testing.T) {
	p := InitPrimitives(true)
	require.NotNil(t, p.Analyze4)
	require.NotNil(t, p.Analyze8)

	available := AvailablePrimitives()
	require.NotEmpty(t, available)
	assert.Equal(t, available[0].Name, p.Name)
	assert.Equal(t, generic.Name, available[len(available)-1].Name)
}

func TestPrimitivesFor_ForceGeneric(t *testing.T) {
	features := cpu.DetectFeatures()
	features.ForceGeneric = true
	p := primitivesFor(features)
	assert.Equal(t, generic.Name, p.Name)

	rng := testutil.NewRand(11)
	calls := testutil.Split(testutil.Noise(rng, 8*filterbank.Input8), 8)
	assert.Equal(t, testutil.Run8(generic.Analyze8, calls), testutil.Run8(p.Analyze8, calls))
}

func TestPrimitivesByName(t *testing.T) {
	for _, want := range AvailablePrimitives() {
		got, err := PrimitivesByName(want.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.SIMDLevel, got.SIMDLevel)
	}
}

func TestPrimitives_Golden(t *testing.T) {
	for _, p := range AvailablePrimitives() {
		for _, gc := range testutil.Golden {
			t.Run(p.Name+"/"+gc.Name, func(t *testing.T) {
				var got [][]int32
				if gc.Subbands == 4 {
					got = testutil.Run4(p.Analyze4, gc.Calls)
				} else {
					got = testutil.Run8(p.Analyze8, gc.Calls)
				}
				assert.Equal(t, gc.Want, got)
			})
		}
	}
}

func TestPrimitives_Equivalence(t *testing.T) {
	rng := testutil.NewRand(5)
	noise4 := testutil.Split(testutil.Noise(rng, 64*filterbank.Input4), 4)
	noise8 := testutil.Split(testutil.Noise(rng, 64*filterbank.Input8), 8)
	ext4 := testutil.Split(testutil.Extremes(rng, 64*filterbank.Input4), 4)
	ext8 := testutil.Split(testutil.Extremes(rng, 64*filterbank.Input8), 8)

	want4 := testutil.Run4(generic.Analyze4, noise4)
	want8 := testutil.Run8(generic.Analyze8, noise8)
	wantExt4 := testutil.Run4(generic.Analyze4, ext4)
	wantExt8 := testutil.Run8(generic.Analyze8, ext8)

	for _, p := range AvailablePrimitives() {
		t.Run(p.Name, func(t *testing.T) {
			assert.Equal(t, want4, testutil.Run4(p.Analyze4, noise4))
			assert.Equal(t, want8, testutil.Run8(p.Analyze8, noise8))
			assert.Equal(t, wantExt4, testutil.Run4(p.Analyze4, ext4))
			assert.Equal(t, wantExt8, testutil.Run8(p.Analyze8, ext8))
		})
	}
}

func TestPrimitives_Silence(t *testing.T) {
	silence4 := make([][]int16, 8)
	silence8 := make([][]int16, 8)
	for _, p := range AvailablePrimitives() {
		for _, out := range testutil.Run4(p.Analyze4, silence4) {
			testutil.AssertAllZero(t, out, p.Name)
		}
		for _, out := range testutil.Run8(p.Analyze8, silence8) {
			testutil.AssertAllZero(t, out, p.Name)
		}
	}
}

// Output blocks go exactly to out[b*stride:], leaving the gaps alone.
func TestPrimitives_Stride(t *testing.T) {
	const (
		stride   = 10
		sentinel = int32(-99)
	)
	rng := testutil.NewRand(9)

	for _, p := range AvailablePrimitives() {
		t.Run(p.Name, func(t *testing.T) {
			calls := testutil.Split(testutil.Noise(rng, 2*filterbank.Input4), 4)
			want := testutil.Run4(p.Analyze4, calls)

			var history [filterbank.History4]int16
			pos := filterbank.Start(4)
			for i, call := range calls {
				out := make([]int32, 3*stride+4)
				for j := range out {
					out[j] = sentinel
				}
				pcm := (*[filterbank.Input4]int16)(call)
				p.Analyze4(pcm, (*[filterbank.Span4]int16)(history[pos:]), out, stride)
				pos = filterbank.Advance(pos, 4)

				written := func(j int) bool { return j%stride < 4 }
				testutil.AssertUntouched(t, out, sentinel, written)
				for b := range 4 {
					assert.Equal(t, want[i][b*4:b*4+4], out[b*stride:b*stride+4], "call %d block %d", i, b)
				}
			}
		})
	}
}

func TestPrimitives_StrideEight(t *testing.T) {
	const (
		stride   = 16
		sentinel = int32(-99)
	)
	rng := testutil.NewRand(10)

	for _, p := range AvailablePrimitives() {
		t.Run(p.Name, func(t *testing.T) {
			calls := testutil.Split(testutil.Noise(rng, 2*filterbank.Input8), 8)
			want := testutil.Run8(p.Analyze8, calls)

			var history [filterbank.History8]int16
			pos := filterbank.Start(8)
			for i, call := range calls {
				out := make([]int32, 3*stride+8)
				for j := range out {
					out[j] = sentinel
				}
				pcm := (*[filterbank.Input8]int16)(call)
				p.Analyze8(pcm, (*[filterbank.Span8]int16)(history[pos:]), out, stride)
				pos = filterbank.Advance(pos, 8)

				testutil.AssertUntouched(t, out, sentinel, func(j int) bool { return j%stride < 8 })
				for b := range 4 {
					assert.Equal(t, want[i][b*8:b*8+8], out[b*stride:b*stride+8], "call %d block %d", i, b)
				}
			}
		})
	}
}

func TestCPUInfo(t *testing.T) {
	assert.NotEmpty(t, CPUInfo())
}
