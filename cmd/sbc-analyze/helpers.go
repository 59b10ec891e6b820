package main

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	sbc "github.com/tphakala/go-sbc"
	"github.com/tphakala/go-sbc/internal/reference"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// wavInput holds a decoded WAV file as interleaved 16-bit PCM.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	pcm      []int16
}

// readWAV decodes a PCM WAV file and narrows it to 16 bits.
func readWAV(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("missing format in %s", path)
	}

	bitDepth := int(decoder.BitDepth)
	pcm, err := toInt16(buf.Data, bitDepth)
	if err != nil {
		return nil, err
	}

	return &wavInput{
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		bitDepth: bitDepth,
		pcm:      pcm,
	}, nil
}

// toInt16 keeps the 16 most significant bits of each sample.
func toInt16(data []int, bitDepth int) ([]int16, error) {
	var shift int
	switch bitDepth {
	case bitsPerSample16:
	case bitsPerSample24, bitsPerSample32:
		shift = bitDepth - bitsPerSample16
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}

	out := make([]int16, len(data))
	for i, v := range data {
		out[i] = int16(v >> shift)
	}
	return out, nil
}

// bandStats collects subband samples per channel in subband units.
type bandStats struct {
	subbands int
	channels int
	frames   int

	// samples[ch] holds every block of the channel, M values per block.
	samples [][]float64
}

func newBandStats(subbands, channels int) *bandStats {
	return &bandStats{
		subbands: subbands,
		channels: channels,
		samples:  make([][]float64, channels),
	}
}

func (s *bandStats) add(f sbc.Frame) {
	for b := range f.Blocks {
		for ch := range f.Channels {
			s.samples[ch] = append(s.samples[ch], reference.ToFloat(f.Block(b, ch))...)
		}
	}
	s.frames++
}

// levelsDB returns the RMS level of every subband relative to full scale.
func (s *bandStats) levelsDB() [][]float64 {
	out := make([][]float64, s.channels)
	band := make([]float64, 0, len(s.samples[0])/s.subbands)
	for ch, samples := range s.samples {
		out[ch] = make([]float64, s.subbands)
		for k := range s.subbands {
			band = band[:0]
			for i := k; i < len(samples); i += s.subbands {
				band = append(band, samples[i])
			}
			out[ch][k] = reference.DB(reference.RMS(band) / (1 << 15))
		}
	}
	return out
}

// analyzeStream feeds pcm through the encoder in chunks and flushes the tail.
func analyzeStream(enc *sbc.Encoder, pcm []int16) (*bandStats, error) {
	config := enc.Config()
	stats := newBandStats(config.Subbands, config.Channels)

	for start := 0; start < len(pcm); start += chunkSize {
		frames, err := enc.Write(pcm[start:min(start+chunkSize, len(pcm))])
		if err != nil {
			return nil, err
		}
		for _, f := range frames {
			stats.add(f)
		}
	}

	frames, err := enc.Flush()
	if err != nil {
		return nil, err
	}
	for _, f := range frames {
		stats.add(f)
	}
	return stats, nil
}

// compareReference runs the float64 filterbank over the same input, padded
// like Flush pads it, and returns the SNR of each channel.
func compareReference(stats *bandStats, pcm []int16, config *sbc.Config) []float64 {
	perChannel := stats.frames * config.Blocks * config.Subbands
	snr := make([]float64, config.Channels)
	for ch := range config.Channels {
		channel := make([]int16, perChannel)
		for i := range channel {
			j := i*config.Channels + ch
			if j >= len(pcm) {
				break
			}
			channel[i] = pcm[j]
		}
		ref := reference.New(config.Subbands).Run(channel)
		snr[ch] = reference.SNR(ref, stats.samples[ch])
	}
	return snr
}
