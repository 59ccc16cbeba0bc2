//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

// init registers the NEON stage. NEON (ASIMD) is mandatory on arm64.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Lanes32: lanes32,
		Lanes64: lanes64,

		Butterfly32: Butterfly32,
		Block32:     Block32,
		Butterfly64: Butterfly64,
		Block64:     Block64,
	})
}
