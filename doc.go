// Package sbc implements the analysis filterbank of the Bluetooth SBC audio
// codec in fixed-point Go.
//
// The filterbank turns interleaved 16-bit PCM into 4 or 8 subbands per
// block. Several interchangeable backends compute it: a portable Go kernel
// and, on amd64, SSE2 and AVX2 assembly kernels. All backends produce
// bit-identical output. Each session picks its backend once, at creation.
//
// # Quick Start
//
//	enc, err := sbc.NewEncoder(&sbc.Config{
//	    Subbands:   8,
//	    Blocks:     16,
//	    Channels:   2,
//	    EnableSIMD: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	frames, err := enc.Write(pcm) // interleaved int16 samples
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range frames {
//	    _ = f.At(0, 0, 0) // block 0, left channel, lowest subband
//	}
//
// # Numeric Contract
//
// Each output value is the subband sample scaled by 2^15. The window stage
// accumulates 16x16-bit products in 32 bits, adds 1<<(SCALE-1), shifts right
// by SCALE (16 for 4 subbands, 17 for 8) and saturates to 16 bits. The
// modulation stage is an exact 32-bit integer matrix product.
//
// # Backend Selection
//
// Config.EnableSIMD=false or the SBC_NOSIMD environment variable restrict a
// session to the portable kernel. Building with the purego tag removes the
// assembly backends entirely.
package sbc
