package algofht

import (
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Float is a type constraint for the element types the transform supports.
// The canonical definition is in internal/fhtypes.
type Float = fhtypes.Float

// Strategy selects which kernel family a plan uses.
type Strategy = fhtypes.Strategy

const (
	// StrategyAuto uses a codelet for small sizes, else the widest vector
	// stage, else the scalar driver. Benchmark wisdom overrides it.
	StrategyAuto = fhtypes.StrategyAuto
	// StrategyCodelet forces a straight-line small-size kernel.
	StrategyCodelet = fhtypes.StrategyCodelet
	// StrategyVector forces the driver over the best SIMD stage.
	StrategyVector = fhtypes.StrategyVector
	// StrategyScalar forces the driver over the scalar stage.
	StrategyScalar = fhtypes.StrategyScalar
)

// KernelKind identifies the kind of kernel bound to a plan.
type KernelKind = fht.Kind

const (
	KernelCodelet = fht.KindCodelet
	KernelVector  = fht.KindVector
	KernelScalar  = fht.KindScalar
)

// KernelInfo describes the kernel a plan resolved to.
type KernelInfo struct {
	Kind  KernelKind
	Stage string
	LogN  int
	Lanes int
}

func kernelInfo(d fht.Decision) KernelInfo {
	return KernelInfo{Kind: d.Kind, Stage: d.Stage, LogN: d.LogN, Lanes: d.Lanes}
}
