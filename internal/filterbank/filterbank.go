// Package filterbank defines the buffer geometry shared by every analysis
// kernel, the input reordering that feeds them, and the driver that runs a
// kernel over four consecutive blocks.
//
// A session keeps a per-channel history of 32*M samples. Each driver call
// writes 4*M new samples at the current position and again 16*M elements
// later, so every window of 10*M taps starting at or after the position is
// contiguous. The position starts at 12*M and moves down by 4*M per call,
// wrapping from 0 back to 12*M.
package filterbank

import "github.com/tphakala/go-sbc/internal/tables"

// Buffer geometry for 4 and 8 subbands.
const (
	// Input4 and Input8 are the new samples consumed per call: 4 blocks of M.
	Input4 = 16
	Input8 = 32

	// Window4 and Window8 are the taps one kernel invocation reads.
	Window4 = 40
	Window8 = 80

	// Span4 and Span8 are the history elements one call touches,
	// starting at the current position.
	Span4 = 80
	Span8 = 160

	// History4 and History8 are the per-channel history lengths.
	History4 = 128
	History8 = 256

	// Start4 and Start8 are the position of a fresh history.
	Start4 = 48
	Start8 = 96

	mirror4 = 64
	mirror8 = 128
)

// Kernel4 filters one 4-band block: out receives the 4 subband samples of
// the window in, using an odd or even table.
type Kernel4 func(in *[Window4]int16, out *[4]int32, consts *[tables.Len4]int16)

// Kernel8 is the 8-band counterpart of Kernel4.
type Kernel8 func(in *[Window8]int16, out *[8]int32, consts *[tables.Len8]int16)

// Analyze4Func transforms 4 blocks of 4 new samples. pcm holds the samples in
// time order. x is the history view at the session position. Block b is
// written to out[b*outStride : b*outStride+4].
type Analyze4Func func(pcm *[Input4]int16, x *[Span4]int16, out []int32, outStride int)

// Analyze8Func transforms 4 blocks of 8 new samples; see Analyze4Func.
type Analyze8Func func(pcm *[Input8]int16, x *[Span8]int16, out []int32, outStride int)

// fetch4 and fetch8 give, for each history slot of a call, the index of the
// new sample stored there. Each 2M group is newest first in tables.Layout
// order.
var (
	fetch4 = [Input4]uint8{
		15, 11, 14, 12, 13, 9, 10, 8,
		7, 3, 6, 4, 5, 1, 2, 0,
	}
	fetch8 = [Input8]uint8{
		31, 23, 30, 24, 29, 25, 28, 26, 27, 19, 22, 16, 21, 17, 20, 18,
		15, 7, 14, 8, 13, 9, 12, 10, 11, 3, 6, 0, 5, 1, 4, 2,
	}
)

// Fetch4 stores 16 new samples into the history view and its mirror.
func Fetch4(pcm *[Input4]int16, x *[Span4]int16) {
	for i, src := range fetch4 {
		v := pcm[src]
		x[i] = v
		x[mirror4+i] = v
	}
}

// Fetch8 stores 32 new samples into the history view and its mirror.
func Fetch8(pcm *[Input8]int16, x *[Span8]int16) {
	for i, src := range fetch8 {
		v := pcm[src]
		x[i] = v
		x[mirror8+i] = v
	}
}

// Analyze4 reorders pcm into x and runs k over the four windows of the call,
// oldest block first. Odd and even tables alternate.
func Analyze4(k Kernel4, pcm *[Input4]int16, x *[Span4]int16, out []int32, outStride int) {
	Fetch4(pcm, x)

	_ = out[3*outStride+3]
	k((*[Window4]int16)(x[12:]), (*[4]int32)(out), &tables.Analysis4Odd)
	k((*[Window4]int16)(x[8:]), (*[4]int32)(out[outStride:]), &tables.Analysis4Even)
	k((*[Window4]int16)(x[4:]), (*[4]int32)(out[2*outStride:]), &tables.Analysis4Odd)
	k((*[Window4]int16)(x[0:]), (*[4]int32)(out[3*outStride:]), &tables.Analysis4Even)
}

// Analyze8 is the 8-band counterpart of Analyze4.
func Analyze8(k Kernel8, pcm *[Input8]int16, x *[Span8]int16, out []int32, outStride int) {
	Fetch8(pcm, x)

	_ = out[3*outStride+7]
	k((*[Window8]int16)(x[24:]), (*[8]int32)(out), &tables.Analysis8Odd)
	k((*[Window8]int16)(x[16:]), (*[8]int32)(out[outStride:]), &tables.Analysis8Even)
	k((*[Window8]int16)(x[8:]), (*[8]int32)(out[2*outStride:]), &tables.Analysis8Odd)
	k((*[Window8]int16)(x[0:]), (*[8]int32)(out[3*outStride:]), &tables.Analysis8Even)
}

// Start returns the position of a fresh history.
func Start(subbands int) int {
	return 12 * subbands
}

// Advance returns the position for the call after one made at pos.
func Advance(pos, subbands int) int {
	pos -= 4 * subbands
	if pos < 0 {
		pos = 12 * subbands
	}
	return pos
}

// HistoryLen returns the per-channel history length.
func HistoryLen(subbands int) int {
	return 32 * subbands
}
