package sbc

// NewA2DPEncoder creates an encoder with the A2DP default layout: 8 subbands,
// 16 blocks per frame and SIMD enabled.
func NewA2DPEncoder(channels int) (*Encoder, error) {
	return NewEncoder(&Config{
		Subbands:   a2dpSubbands,
		Blocks:     a2dpBlocks,
		Channels:   channels,
		EnableSIMD: true,
	})
}

// AnalyzeMono runs a fresh mono session over pcm, padding the last frame
// with silence.
func AnalyzeMono(pcm []int16, subbands, blocks int) ([]Frame, error) {
	return analyzeAll(pcm, &Config{Subbands: subbands, Blocks: blocks, Channels: 1, EnableSIMD: true})
}

// AnalyzeStereo runs a fresh stereo session over interleaved pcm.
func AnalyzeStereo(pcm []int16, subbands, blocks int) ([]Frame, error) {
	return analyzeAll(pcm, &Config{Subbands: subbands, Blocks: blocks, Channels: 2, EnableSIMD: true})
}

func analyzeAll(pcm []int16, config *Config) ([]Frame, error) {
	enc, err := NewEncoder(config)
	if err != nil {
		return nil, err
	}

	frames, err := enc.Write(pcm)
	if err != nil {
		return nil, err
	}
	tail, err := enc.Flush()
	if err != nil {
		return nil, err
	}
	return append(frames, tail...), nil
}
