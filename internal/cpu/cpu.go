// Package cpu detects the SIMD extensions the analysis kernels can use.
//
// Detection runs once, on the first call to DetectFeatures, and the result is
// cached. Tests override detection with SetForcedFeatures.
package cpu

import (
	"os"
	"sync"
)

// NoSIMDEnv names the environment variable that disables every vectorized
// kernel when set to a value other than "" or "0".
const NoSIMDEnv = "SBC_NOSIMD"

// SIMDLevel identifies an instruction set extension a kernel requires.
type SIMDLevel int

const (
	// SIMDNone is the portable Go kernel.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline (128-bit integer multiply-add).
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2 (256-bit integer multiply-add).
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables all SIMD kernels.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the running system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.ForceGeneric = noSIMD(os.Getenv(NoSIMDEnv))
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 reports whether SSE2 kernels may run.
func HasSSE2() bool {
	return Supports(DetectFeatures(), SIMDSSE2)
}

// HasAVX2 reports whether AVX2 kernels may run.
func HasAVX2() bool {
	return Supports(DetectFeatures(), SIMDAVX2)
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features allow a kernel built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

func noSIMD(v string) bool {
	return v != "" && v != "0"
}
