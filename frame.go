package sbc

// Frame holds the subband samples of one frame, laid out block by block,
// then channel, then subband.
type Frame struct {
	Blocks   int
	Channels int
	Subbands int
	Samples  []int32
}

func newFrame(c *Config) Frame {
	return Frame{
		Blocks:   c.Blocks,
		Channels: c.Channels,
		Subbands: c.Subbands,
		Samples:  make([]int32, c.FrameSamples()),
	}
}

// At returns one subband sample.
func (f *Frame) At(block, channel, subband int) int32 {
	return f.Samples[(block*f.Channels+channel)*f.Subbands+subband]
}

// Block returns the subband samples of one block and channel.
func (f *Frame) Block(block, channel int) []int32 {
	start := (block*f.Channels + channel) * f.Subbands
	return f.Samples[start : start+f.Subbands]
}
