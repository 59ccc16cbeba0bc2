package fht

import (
	"fmt"

	"github.com/cwbudde/algo-fht/internal/butterfly"
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/codelet"
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Kind identifies the arm of the dispatcher that handles a transform.
type Kind uint8

const (
	// KindCodelet is a generated straight-line kernel.
	KindCodelet Kind = iota
	// KindVector is the driver over a SIMD butterfly stage.
	KindVector
	// KindScalar is the driver over the scalar stage.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindCodelet:
		return "codelet"
	case KindVector:
		return "vector"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Decision describes the kernel chosen for one transform.
type Decision struct {
	Kind  Kind
	Stage string
	Level cpu.SIMDLevel
	LogN  int
	Lanes int
}

// SelectWidth picks the kernel for elements of the given bit width.
//
// StrategyAuto prefers a codelet for logN <= codelet.MaxLog, then the driver
// over the highest-priority vector stage the features support, then the
// scalar driver. Forcing StrategyCodelet or StrategyVector where no such
// kernel exists returns ErrNotImplemented. The choice depends only on the
// arguments, never on buffer contents.
func SelectWidth(bits, logN int, features cpu.Features, strategy fhtypes.Strategy) (Decision, error) {
	d, _, err := decide(bits, logN, features, strategy)
	return d, err
}

func decide(bits, logN int, features cpu.Features, strategy fhtypes.Strategy) (Decision, *registry.Entry, error) {
	if bits != 32 && bits != 64 {
		return Decision{}, nil, fmt.Errorf("%w: %d-bit elements", ErrUnsupportedWidth, bits)
	}
	if err := ValidateLogN(logN); err != nil {
		return Decision{}, nil, err
	}

	switch strategy {
	case fhtypes.StrategyAuto:
		if codelet.Has(logN) {
			return codeletDecision(logN), nil, nil
		}
		if entry := vectorEntry(features, bits); entry != nil {
			return vectorDecision(entry, bits, logN), entry, nil
		}
		return scalarDecision(logN), nil, nil

	case fhtypes.StrategyCodelet:
		if !codelet.Has(logN) {
			return Decision{}, nil, fmt.Errorf("%w: no codelet for log_n %d (max %d)", ErrNotImplemented, logN, codelet.MaxLog)
		}
		return codeletDecision(logN), nil, nil

	case fhtypes.StrategyVector:
		entry := vectorEntry(features, bits)
		if entry == nil {
			return Decision{}, nil, fmt.Errorf("%w: no vector stage for %d-bit elements on %s", ErrNotImplemented, bits, features.Level())
		}
		return vectorDecision(entry, bits, logN), entry, nil

	case fhtypes.StrategyScalar:
		return scalarDecision(logN), nil, nil

	default:
		return Decision{}, nil, fmt.Errorf("%w: strategy %v", ErrNotImplemented, strategy)
	}
}

// vectorEntry returns the best registered entry with more than one lane for
// the width, or nil.
func vectorEntry(features cpu.Features, bits int) *registry.Entry {
	entry := registry.Global.Lookup(features, bits)
	if entry == nil || lanesFor(entry, bits) <= 1 {
		return nil
	}
	return entry
}

func lanesFor(entry *registry.Entry, bits int) int {
	if bits == 32 {
		return entry.Lanes32
	}
	return entry.Lanes64
}

func codeletDecision(logN int) Decision {
	return Decision{Kind: KindCodelet, Stage: "codelet", Level: cpu.SIMDNone, LogN: logN, Lanes: 1}
}

func vectorDecision(entry *registry.Entry, bits, logN int) Decision {
	return Decision{
		Kind:  KindVector,
		Stage: entry.Name,
		Level: entry.SIMDLevel,
		LogN:  logN,
		Lanes: lanesFor(entry, bits),
	}
}

func scalarDecision(logN int) Decision {
	return Decision{Kind: KindScalar, Stage: "generic", Level: cpu.SIMDNone, LogN: logN, Lanes: 1}
}

// Select binds the decision for element type T to a kernel that
// transforms buf[:1<<logN] in place.
func Select[T fhtypes.Float](logN int, features cpu.Features, strategy fhtypes.Strategy) (fhtypes.KernelFunc[T], Decision, error) {
	d, entry, err := decide(fhtypes.WidthOf[T](), logN, features, strategy)
	if err != nil {
		return nil, Decision{}, err
	}

	switch d.Kind {
	case KindCodelet:
		return fhtypes.KernelFunc[T](codelet.Lookup[T](logN)), d, nil
	case KindVector:
		return driverKernel(logN, butterfly.FromEntry[T](entry)), d, nil
	default:
		return driverKernel(logN, butterfly.Scalar[T]()), d, nil
	}
}

func driverKernel[T fhtypes.Float](logN int, stage butterfly.Stage[T]) fhtypes.KernelFunc[T] {
	return func(buf []T) {
		Run(buf, logN, stage)
	}
}

// Transform selects a kernel for buf[:1<<logN] and runs it, without building
// a kernel closure. Used by the one-shot entry points.
func Transform[T fhtypes.Float](buf []T, logN int, features cpu.Features, strategy fhtypes.Strategy) (Decision, error) {
	d, entry, err := decide(fhtypes.WidthOf[T](), logN, features, strategy)
	if err != nil {
		return Decision{}, err
	}

	switch d.Kind {
	case KindCodelet:
		codelet.Lookup[T](logN)(buf)
	case KindVector:
		Run(buf, logN, butterfly.FromEntry[T](entry))
	default:
		Run(buf, logN, butterfly.Scalar[T]())
	}

	return d, nil
}
