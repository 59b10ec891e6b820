package sbc

// Stream geometry limits.
const (
	subbands4 = 4
	subbands8 = 8

	minChannels = 1
	maxChannels = 2

	// blocksPerCall is the number of blocks one dispatch call transforms.
	blocksPerCall = 4
	maxBlocks     = 16

	// pendingFrames sizes the streaming buffer in whole frames.
	pendingFrames = 2
)

// A2DP defaults used by NewA2DPEncoder.
const (
	a2dpSubbands = 8
	a2dpBlocks   = 16
)
