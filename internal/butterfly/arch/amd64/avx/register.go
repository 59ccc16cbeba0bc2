//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

// init registers the AVX stage. Lookup only selects it when the capability
// descriptor reports AVX (CPUID plus OS support for YMM state).
//
// Priority: 20 (highest on amd64)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,

		Lanes32: lanes32,
		Lanes64: lanes64,

		Butterfly32: Butterfly32,
		Block32:     Block32,
		Butterfly64: Butterfly64,
		Block64:     Block64,
	})
}
