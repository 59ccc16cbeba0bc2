// Package registry provides the dispatch table of butterfly stages.
//
// Each stage variant (scalar, SSE2, AVX, NEON) registers one Entry from an
// init function in its arch package. Lookup returns the highest-priority
// entry the capability descriptor supports; the table is fixed once package
// initialization completes.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fht/internal/cpu"
)

// Entry describes one butterfly stage implementation.
//
// Butterfly* implement the separated-stride path: lo[i], hi[i] = lo[i]+hi[i],
// lo[i]-hi[i] with whole registers on both sides. Block* implement the
// interleaved-stride path: they run passes 0 .. log2(Lanes)-1 on every
// register-sized block of buf, permuting lanes inside the register. The
// scalar entry has Lanes 1 and nil Block functions.
type Entry struct {
	// Name identifies the stage (e.g. "generic", "sse2", "avx").
	Name string

	// SIMDLevel is the instruction set the stage needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Suggested values:
	//   - generic: 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX: 20
	Priority int

	// Lanes32 and Lanes64 are the register lane counts per precision.
	Lanes32 int
	Lanes64 int

	Butterfly32 func(lo, hi []float32)
	Block32     func(buf []float32)
	Butterfly64 func(lo, hi []float64)
	Block64     func(buf []float64)
}

// Supports reports whether the entry carries kernels for the element width.
func (e *Entry) Supports(bits int) bool {
	switch bits {
	case 32:
		return e.Butterfly32 != nil && (e.Lanes32 <= 1 || e.Block32 != nil)
	case 64:
		return e.Butterfly64 != nil && (e.Lanes64 <= 1 || e.Block64 != nil)
	default:
		return false
	}
}

// Registry manages registration and lookup of stage entries.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry populated by the arch packages.
var Global = &Registry{}

// Register adds a stage entry. Registrations should complete before the
// first Lookup, which is guaranteed when they happen in init functions.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features that
// has kernels for the given element width, or nil if none is registered.
func (r *Registry) Lookup(features cpu.Features, bits int) *Entry {
	r.mu.RLock()
	if !r.sorted {
		r.mu.RUnlock()
		r.sort()
		r.mu.RLock()
	}
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && entry.Supports(bits) {
			return entry
		}
	}

	return nil
}

// sort orders the entries once after the last registration. Lookups after
// that take only the read lock.
func (r *Registry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority sorts entries by descending priority.
// Must be called with r.mu held for writing.
func (r *Registry) sortByPriority() {
	// insertion sort: the table holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
func (r *Registry) ListEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Tests only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
