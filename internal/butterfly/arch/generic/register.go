package generic

import (
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

// init registers the scalar stage. It is the fallback for every capability
// descriptor, including ForceGeneric.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Lanes32: 1,
		Lanes64: 1,

		Butterfly32: Butterfly[float32],
		Butterfly64: Butterfly[float64],
	})
}
