package algofht

import (
	"github.com/cwbudde/algo-fht/internal/butterfly"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

// Capabilities reports what the transform can use on this machine.
type Capabilities struct {
	// Architecture is runtime.GOARCH.
	Architecture string
	// Stage is the butterfly stage large transforms run on ("avx", "sse2",
	// "neon" or "generic").
	Stage string
	// SIMDLevel names the instruction set of Stage.
	SIMDLevel string
	// VectorBits is the register width of Stage; 0 for the scalar stage.
	VectorBits int
	// ForceGeneric is set when SIMD was disabled through FHT_NO_SIMD.
	ForceGeneric bool
}

// Capability returns the detected capabilities. The result is fixed after
// the first call.
func Capability() Capabilities {
	features := cpu.DetectFeatures()
	stage := butterfly.Best[float32](features)

	bits := 0
	if stage.Vector() {
		bits = stage.Lanes * 32
	}

	return Capabilities{
		Architecture: features.Architecture,
		Stage:        stage.Name,
		SIMDLevel:    stage.Level.String(),
		VectorBits:   bits,
		ForceGeneric: features.ForceGeneric,
	}
}
