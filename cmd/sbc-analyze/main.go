// Command sbc-analyze runs a WAV file through the SBC analysis filterbank and
// reports the level of every subband.
//
// Usage:
//
//	sbc-analyze input.wav
//	sbc-analyze -subbands 4 -blocks 8 input.wav
//	sbc-analyze -compare input.wav          # also measure SNR against float64
//	sbc-analyze -backend generic input.wav  # pin a kernel set
//	sbc-analyze -list                       # show available backends
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	sbc "github.com/tphakala/go-sbc"
)

const (
	// CLI defaults
	defaultSubbands = 8
	defaultBlocks   = 16
	minRequiredArgs = 1

	// chunkSize is the number of interleaved samples fed per Write.
	chunkSize = 4096
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	subbands := flag.Int("subbands", defaultSubbands, "Subbands per block: 4 or 8")
	blocks := flag.Int("blocks", defaultBlocks, "Blocks per frame: 4, 8, 12 or 16")
	useGeneric := flag.Bool("generic", false, "Disable SIMD kernels")
	backend := flag.String("backend", "", "Force a backend by name (see -list)")
	compare := flag.Bool("compare", false, "Compare against the float64 reference filterbank")
	list := flag.Bool("list", false, "List available backends and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *list {
		printBackends()
		return nil
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("missing input file")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	input, err := readWAV(args[0])
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %s", args[0])
		log.Printf("Format: %d Hz, %d channels, %d-bit, %d frames",
			input.rate, input.channels, input.bitDepth, len(input.pcm)/input.channels)
	}

	config := &sbc.Config{
		Subbands:   *subbands,
		Blocks:     *blocks,
		Channels:   input.channels,
		EnableSIMD: !*useGeneric,
	}
	enc, err := newEncoder(config, *backend)
	if err != nil {
		return err
	}
	if *verbose {
		info := enc.Info()
		log.Printf("Backend: %s (%s)", info.Backend, info.SIMDLevel)
		log.Printf("CPU: %s", info.CPU)
	}

	start := time.Now()
	stats, err := analyzeStream(enc, input.pcm)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Analyzed %s\n", filepath.Base(args[0]))
	fmt.Printf("  %d frames, %d subbands x %d blocks, backend %s\n",
		stats.frames, config.Subbands, config.Blocks, enc.Info().Backend)
	if elapsed > 0 {
		fmt.Printf("  Speed: %.1fx realtime\n",
			float64(len(input.pcm)/input.channels)/float64(input.rate)/elapsed.Seconds())
	}
	printLevels(stats)

	if *compare {
		snr := compareReference(stats, input.pcm, config)
		for ch, v := range snr {
			fmt.Printf("  channel %d: %.1f dB SNR vs float64\n", ch, v)
		}
	}
	return nil
}

func newEncoder(config *sbc.Config, backend string) (*sbc.Encoder, error) {
	if backend == "" {
		return sbc.NewEncoder(config)
	}
	prims, err := sbc.PrimitivesByName(backend)
	if err != nil {
		return nil, err
	}
	return sbc.NewEncoderWithPrimitives(config, prims)
}

func printBackends() {
	fmt.Printf("CPU: %s\n", sbc.CPUInfo())
	for _, p := range sbc.AvailablePrimitives() {
		fmt.Printf("  %-8s %s\n", p.Name, p.SIMDLevel)
	}
}

func printLevels(stats *bandStats) {
	for ch, levels := range stats.levelsDB() {
		fmt.Printf("  channel %d:", ch)
		for _, db := range levels {
			fmt.Printf(" %7.1f", db)
		}
		fmt.Println(" dBFS")
	}
}
