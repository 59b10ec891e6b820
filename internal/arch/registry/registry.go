// Package registry collects the analysis backends linked into the binary.
// Backends register from init; dispatch setup picks the highest-priority
// entry the host supports.
package registry

import (
	"sync"

	"github.com/tphakala/go-sbc/internal/cpu"
	"github.com/tphakala/go-sbc/internal/filterbank"
)

// OpEntry is one registered backend. Both slots are always set.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Analyze4  filterbank.Analyze4Func
	Analyze8  filterbank.Analyze8Func
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the root package consults.
var Global = &OpRegistry{}

// Register adds a backend.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features, or nil
// if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Supported returns every backend features allow, highest priority first.
func (r *OpRegistry) Supported(features cpu.Features) []OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}

func (r *OpRegistry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// ListEntries returns a copy of the entries for tests and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
