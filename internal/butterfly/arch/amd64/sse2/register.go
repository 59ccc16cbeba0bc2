//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

// init registers the SSE2 stage. SSE2 is part of the x86-64 baseline.
//
// Priority: 10 (preferred over generic, below AVX)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Lanes32: lanes32,
		Lanes64: lanes64,

		Butterfly32: Butterfly32,
		Block32:     Block32,
		Butterfly64: Butterfly64,
		Block64:     Block64,
	})
}
