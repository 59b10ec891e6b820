package sbc

import (
	"errors"
	"fmt"
)

// Common errors returned by the encoder.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid sbc configuration")

	// ErrFrameSize indicates a PCM or coefficient buffer of the wrong length.
	ErrFrameSize = errors.New("wrong frame size")

	// ErrUnsupported indicates a backend that cannot run on this host.
	ErrUnsupported = errors.New("backend not supported")
)

// Config holds analysis session parameters.
type Config struct {
	// Subbands is 4 or 8.
	Subbands int

	// Blocks is the number of blocks per frame: 4, 8, 12 or 16.
	Blocks int

	// Channels is 1 (mono) or 2 (stereo). PCM is interleaved.
	Channels int

	// EnableSIMD allows vectorized backends when the CPU supports them.
	// Set to false to force the portable Go kernel.
	EnableSIMD bool
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Subbands != subbands4 && c.Subbands != subbands8 {
		return fmt.Errorf("%w: subbands must be %d or %d, got %d",
			ErrInvalidConfig, subbands4, subbands8, c.Subbands)
	}

	if c.Blocks < blocksPerCall || c.Blocks > maxBlocks || c.Blocks%blocksPerCall != 0 {
		return fmt.Errorf("%w: blocks must be 4, 8, 12 or 16, got %d", ErrInvalidConfig, c.Blocks)
	}

	if c.Channels < minChannels || c.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be %d-%d, got %d",
			ErrInvalidConfig, minChannels, maxChannels, c.Channels)
	}

	return nil
}

// FrameSamples returns the interleaved PCM samples in one frame, which is
// also the number of coefficients the frame produces.
func (c *Config) FrameSamples() int {
	return c.Blocks * c.Subbands * c.Channels
}

// Info describes an encoder session.
type Info struct {
	// Backend names the selected kernel set ("generic", "sse2", "avx2").
	Backend string

	// SIMDLevel is the instruction set the backend requires.
	SIMDLevel string

	// CPU summarizes the host's SIMD capabilities.
	CPU string

	Subbands     int
	Blocks       int
	Channels     int
	FrameSamples int
}
