package sbc

import (
	"fmt"

	"github.com/tphakala/go-sbc/internal/filterbank"
	"github.com/tphakala/go-sbc/internal/ringbuf"
)

// Encoder is an analysis session. It owns one filter history per channel
// and the dispatch table chosen at creation. An Encoder is not safe for
// concurrent use; independent Encoders may run in parallel.
type Encoder struct {
	config   Config
	prims    Primitives
	history  [][]int16
	position int

	pending *ringbuf.Buffer
	frame   []int16
}

// NewEncoder validates config and sets up a session.
func NewEncoder(config *Config) (*Encoder, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newEncoder(*config, InitPrimitives(config.EnableSIMD)), nil
}

// NewEncoderWithPrimitives is like NewEncoder but uses the given dispatch
// table instead of selecting one.
func NewEncoderWithPrimitives(config *Config, prims Primitives) (*Encoder, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if prims.Analyze4 == nil || prims.Analyze8 == nil {
		return nil, fmt.Errorf("%w: dispatch table %q is incomplete", ErrInvalidConfig, prims.Name)
	}

	return newEncoder(*config, prims), nil
}

func newEncoder(config Config, prims Primitives) *Encoder {
	e := &Encoder{
		config:   config,
		prims:    prims,
		history:  make([][]int16, config.Channels),
		position: filterbank.Start(config.Subbands),
		pending:  ringbuf.New(pendingFrames * config.FrameSamples()),
		frame:    make([]int16, config.FrameSamples()),
	}
	for ch := range e.history {
		e.history[ch] = make([]int16, filterbank.HistoryLen(config.Subbands))
	}
	return e
}

// Analyze transforms one frame. pcm holds FrameSamples interleaved samples;
// dst receives the frame's subband samples in Frame layout.
func (e *Encoder) Analyze(pcm []int16, dst []int32) error {
	n := e.config.FrameSamples()
	if len(pcm) != n {
		return fmt.Errorf("%w: got %d PCM samples, want %d", ErrFrameSize, len(pcm), n)
	}
	if len(dst) < n {
		return fmt.Errorf("%w: output holds %d samples, need %d", ErrFrameSize, len(dst), n)
	}

	if e.config.Subbands == subbands4 {
		e.analyze4(pcm, dst)
	} else {
		e.analyze8(pcm, dst)
	}
	return nil
}

func (e *Encoder) analyze4(pcm []int16, dst []int32) {
	channels := e.config.Channels
	stride := channels * subbands4

	var in [filterbank.Input4]int16
	for blk := 0; blk < e.config.Blocks; blk += blocksPerCall {
		for ch := range channels {
			src := blk*stride + ch
			for i := range in {
				in[i] = pcm[src+i*channels]
			}
			x := (*[filterbank.Span4]int16)(e.history[ch][e.position:])
			e.prims.Analyze4(&in, x, dst[blk*stride+ch*subbands4:], stride)
		}
		e.position = filterbank.Advance(e.position, subbands4)
	}
}

func (e *Encoder) analyze8(pcm []int16, dst []int32) {
	channels := e.config.Channels
	stride := channels * subbands8

	var in [filterbank.Input8]int16
	for blk := 0; blk < e.config.Blocks; blk += blocksPerCall {
		for ch := range channels {
			src := blk*stride + ch
			for i := range in {
				in[i] = pcm[src+i*channels]
			}
			x := (*[filterbank.Span8]int16)(e.history[ch][e.position:])
			e.prims.Analyze8(&in, x, dst[blk*stride+ch*subbands8:], stride)
		}
		e.position = filterbank.Advance(e.position, subbands8)
	}
}

// Write buffers interleaved PCM and returns every frame completed by it.
func (e *Encoder) Write(pcm []int16) ([]Frame, error) {
	e.pending.Write(pcm)

	var frames []Frame
	for e.pending.Available() >= len(e.frame) {
		e.pending.ReadInto(e.frame)
		f := newFrame(&e.config)
		if err := e.Analyze(e.frame, f.Samples); err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Flush pads buffered samples with silence to a whole frame and analyzes
// it. It returns no frames when nothing is buffered.
func (e *Encoder) Flush() ([]Frame, error) {
	if e.pending.Available() == 0 {
		return nil, nil
	}

	n := e.pending.ReadInto(e.frame)
	clear(e.frame[n:])

	f := newFrame(&e.config)
	if err := e.Analyze(e.frame, f.Samples); err != nil {
		return nil, err
	}
	return []Frame{f}, nil
}

// Buffered returns the number of PCM samples waiting for a whole frame.
func (e *Encoder) Buffered() int {
	return e.pending.Available()
}

// Reset clears filter history and buffered input. The dispatch table is
// kept.
func (e *Encoder) Reset() {
	for _, h := range e.history {
		clear(h)
	}
	e.position = filterbank.Start(e.config.Subbands)
	e.pending.Clear()
}

// Config returns the session configuration.
func (e *Encoder) Config() Config {
	return e.config
}

// Primitives returns the session's dispatch table.
func (e *Encoder) Primitives() Primitives {
	return e.prims
}

// Info describes the session.
func (e *Encoder) Info() Info {
	return Info{
		Backend:      e.prims.Name,
		SIMDLevel:    e.prims.SIMDLevel,
		CPU:          CPUInfo(),
		Subbands:     e.config.Subbands,
		Blocks:       e.config.Blocks,
		Channels:     e.config.Channels,
		FrameSamples: e.config.FrameSamples(),
	}
}
