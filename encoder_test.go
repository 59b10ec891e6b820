package sbc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-sbc/internal/arch/generic"
	"github.com/tphakala/go-sbc/internal/testutil"
)

func mustEncoder(t *testing.T, config Config) *Encoder {
	t.Helper()
	enc, err := NewEncoder(&config)
	require.NoError(t, err)
	return enc
}

// analyzeFrames runs whole frames through Analyze.
func analyzeFrames(t *testing.T, enc *Encoder, pcm []int16) [][]int32 {
	t.Helper()
	config := enc.Config()
	n := config.FrameSamples()
	var out [][]int32
	for i := 0; i+n <= len(pcm); i += n {
		dst := make([]int32, n)
		require.NoError(t, enc.Analyze(pcm[i:i+n], dst))
		out = append(out, dst)
	}
	return out
}

func TestEncoder_MonoMatchesDriver(t *testing.T) {
	for _, m := range []int{4, 8} {
		for _, blocks := range []int{4, 8, 16} {
			enc := mustEncoder(t, Config{Subbands: m, Blocks: blocks, Channels: 1, EnableSIMD: true})
			signal := testutil.Sine(4*blocks*m, 12000, 0.21, 0)

			var flat []int32
			for _, f := range analyzeFrames(t, enc, signal) {
				flat = append(flat, f...)
			}

			var want []int32
			calls := testutil.Split(signal, m)
			if m == 4 {
				for _, o := range testutil.Run4(generic.Analyze4, calls) {
					want = append(want, o...)
				}
			} else {
				for _, o := range testutil.Run8(generic.Analyze8, calls) {
					want = append(want, o...)
				}
			}
			assert.Equal(t, want, flat, "M=%d blocks=%d", m, blocks)
		}
	}
}

func TestEncoder_StereoChannelsIndependent(t *testing.T) {
	for _, m := range []int{4, 8} {
		left := testutil.Sine(3*16*m, 9000, 0.4, 0)
		right := testutil.Ramp(3*16*m, -20000, 7)

		stereo, err := AnalyzeStereo(testutil.Interleave(left, right), m, 16)
		require.NoError(t, err)
		monoL, err := AnalyzeMono(left, m, 16)
		require.NoError(t, err)
		monoR, err := AnalyzeMono(right, m, 16)
		require.NoError(t, err)

		require.Len(t, stereo, 3)
		require.Len(t, monoL, 3)
		for i, f := range stereo {
			for b := range 16 {
				assert.Equal(t, monoL[i].Block(b, 0), f.Block(b, 0), "M=%d frame %d block %d left", m, i, b)
				assert.Equal(t, monoR[i].Block(b, 0), f.Block(b, 1), "M=%d frame %d block %d right", m, i, b)
			}
		}
	}
}

func TestEncoder_FrameSizeErrors(t *testing.T) {
	enc := mustEncoder(t, Config{Subbands: 8, Blocks: 16, Channels: 2})

	err := enc.Analyze(make([]int16, 255), make([]int32, 256))
	require.ErrorIs(t, err, ErrFrameSize)

	err = enc.Analyze(make([]int16, 256), make([]int32, 128))
	require.ErrorIs(t, err, ErrFrameSize)

	require.NoError(t, enc.Analyze(make([]int16, 256), make([]int32, 300)))
}

func TestEncoder_WriteChunking(t *testing.T) {
	config := Config{Subbands: 8, Blocks: 8, Channels: 2, EnableSIMD: true}
	rng := testutil.NewRand(21)
	pcm := testutil.Noise(rng, 5*config.FrameSamples())

	want := analyzeFrames(t, mustEncoder(t, config), pcm)

	enc := mustEncoder(t, config)
	var got [][]int32
	for rest := pcm; len(rest) > 0; {
		n := min(1+rng.IntN(300), len(rest))
		frames, err := enc.Write(rest[:n])
		require.NoError(t, err)
		for _, f := range frames {
			got = append(got, f.Samples)
		}
		rest = rest[n:]
	}

	assert.Equal(t, 0, enc.Buffered())
	assert.Equal(t, want, got)
}

func TestEncoder_Flush(t *testing.T) {
	config := Config{Subbands: 4, Blocks: 8, Channels: 1}
	enc := mustEncoder(t, config)

	frames, err := enc.Flush()
	require.NoError(t, err)
	assert.Empty(t, frames)

	partial := testutil.Ramp(10, 100, 300)
	frames, err = enc.Write(partial)
	require.NoError(t, err)
	assert.Empty(t, frames)
	assert.Equal(t, 10, enc.Buffered())

	frames, err = enc.Flush()
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 0, enc.Buffered())

	padded := make([]int16, config.FrameSamples())
	copy(padded, partial)
	want := analyzeFrames(t, mustEncoder(t, config), padded)
	assert.Equal(t, want[0], frames[0].Samples)
}

func TestEncoder_Reset(t *testing.T) {
	config := Config{Subbands: 8, Blocks: 16, Channels: 2, EnableSIMD: true}
	enc := mustEncoder(t, config)
	pcm := testutil.Noise(testutil.NewRand(4), 2*config.FrameSamples())

	first := analyzeFrames(t, enc, pcm)
	_, err := enc.Write(pcm[:17])
	require.NoError(t, err)

	enc.Reset()
	assert.Equal(t, 0, enc.Buffered())
	assert.Equal(t, first, analyzeFrames(t, enc, pcm))
}

func TestEncoder_Silence(t *testing.T) {
	frames, err := AnalyzeMono(make([]int16, 1000), 8, 16)
	require.NoError(t, err)
	require.Len(t, frames, 8)
	for _, f := range frames {
		testutil.AssertAllZero(t, f.Samples)
	}
}

func TestEncoder_Info(t *testing.T) {
	enc := mustEncoder(t, Config{Subbands: 8, Blocks: 12, Channels: 2})
	info := enc.Info()

	assert.Equal(t, generic.Name, info.Backend)
	assert.Equal(t, "None", info.SIMDLevel)
	assert.NotEmpty(t, info.CPU)
	assert.Equal(t, 8, info.Subbands)
	assert.Equal(t, 12, info.Blocks)
	assert.Equal(t, 2, info.Channels)
	assert.Equal(t, 192, info.FrameSamples)
	assert.Equal(t, generic.Name, enc.Primitives().Name)
}

func TestNewA2DPEncoder(t *testing.T) {
	enc, err := NewA2DPEncoder(2)
	require.NoError(t, err)
	c := enc.Config()
	assert.Equal(t, 8, c.Subbands)
	assert.Equal(t, 16, c.Blocks)
	assert.True(t, c.EnableSIMD)

	_, err = NewA2DPEncoder(0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// Every backend gives the same frames through a full session.
func TestEncoder_BackendsAgree(t *testing.T) {
	config := Config{Subbands: 8, Blocks: 16, Channels: 2}
	pcm := testutil.Interleave(
		testutil.Sine(64*16, 30000, 0.9, 0),
		testutil.Noise(testutil.NewRand(8), 64*16),
	)

	ref, err := NewEncoderWithPrimitives(&config, InitPrimitives(false))
	require.NoError(t, err)
	want := analyzeFrames(t, ref, pcm)

	for _, p := range AvailablePrimitives() {
		enc, err := NewEncoderWithPrimitives(&config, p)
		require.NoError(t, err)
		assert.Equal(t, want, analyzeFrames(t, enc, pcm), p.Name)
	}
}

// Independent sessions share nothing and may run concurrently.
func TestEncoder_Parallel(t *testing.T) {
	const sessions = 8
	config := Config{Subbands: 8, Blocks: 16, Channels: 2, EnableSIMD: true}
	pcm := testutil.Noise(testutil.NewRand(99), 20*config.FrameSamples())
	want := analyzeFrames(t, mustEncoder(t, config), pcm)

	results := make([][][]int32, sessions)
	var wg sync.WaitGroup
	for i := range sessions {
		enc := mustEncoder(t, config)
		wg.Go(func() {
			n := config.FrameSamples()
			for j := 0; j+n <= len(pcm); j += n {
				dst := make([]int32, n)
				if err := enc.Analyze(pcm[j:j+n], dst); err != nil {
					return
				}
				results[i] = append(results[i], dst)
			}
		})
	}
	wg.Wait()

	for i := range sessions {
		assert.Equal(t, want, results[i], "session %d", i)
	}
}
