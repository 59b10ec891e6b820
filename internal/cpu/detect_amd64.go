//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through x/sys/cpu. SSE2 is part of the
// x86-64 baseline, so detection never executes an unsupported instruction.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      true,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
