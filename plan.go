package algofht

import (
	"fmt"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// PlanOptions configures plan construction.
type PlanOptions struct {
	// Strategy forces a kernel family. StrategyAuto consults benchmark
	// wisdom and falls back to the default policy.
	Strategy Strategy
}

// Plan is a transform of one fixed size with its kernel resolved at
// construction time.
//
// Transform, InPlace, TransformInto and TransformBatch are safe for
// concurrent use on distinct buffers. TransformStrided uses the plan's
// scratch buffer and must not be called concurrently on the same plan.
type Plan[T Float] struct {
	n        int
	logN     int
	decision fht.Decision
	kernel   fhtypes.KernelFunc[T]

	stridedScratch []T
}

// NewPlan creates a plan for length-n transforms with the default strategy.
//
// Example:
//
//	plan, err := algofht.NewPlan[float32](1024)
//	if err != nil {
//	    return err
//	}
//	err = plan.Transform(buf)
func NewPlan[T Float](n int) (*Plan[T], error) {
	return NewPlanWithOptions[T](n, PlanOptions{})
}

// NewPlanWithOptions creates a plan for length-n transforms.
//
// Returns ErrInvalidLength or ErrSizeTooLarge for unusable n, and
// ErrNotImplemented if opts.Strategy forces a kernel family that has no
// kernel for n on this CPU.
func NewPlanWithOptions[T Float](n int, opts PlanOptions) (*Plan[T], error) {
	logN, err := fht.LogNForLength(n)
	if err != nil {
		return nil, err
	}

	features := cpu.DetectFeatures()
	bits := fhtypes.WidthOf[T]()

	strategy := fht.Resolve(fht.DefaultWisdom, bits, logN, features, opts.Strategy)

	kernel, decision, err := fht.Select[T](logN, features, strategy)
	if err != nil && opts.Strategy == StrategyAuto && strategy != StrategyAuto {
		kernel, decision, err = fht.Select[T](logN, features, StrategyAuto)
	}
	if err != nil {
		return nil, err
	}

	return &Plan[T]{
		n:        n,
		logN:     logN,
		decision: decision,
		kernel:   kernel,
	}, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// LogN returns log2 of the transform size.
func (p *Plan[T]) LogN() int {
	return p.logN
}

// Info describes the kernel the plan resolved to.
func (p *Plan[T]) Info() KernelInfo {
	return kernelInfo(p.decision)
}

// Transform transforms buf in place. len(buf) must equal Len().
func (p *Plan[T]) Transform(buf []T) error {
	if buf == nil {
		return ErrNilSlice
	}

	if len(buf) != p.n {
		return fmt.Errorf("%w: got %d elements, plan size %d", ErrLengthMismatch, len(buf), p.n)
	}

	p.kernel(buf)

	return nil
}

// InPlace transforms buf[:Len()] without validation.
// Caller guarantees len(buf) >= Len(); shorter buffers panic.
func (p *Plan[T]) InPlace(buf []T) {
	p.kernel(buf)
}

// TransformInto writes the transform of src to dst, leaving src unchanged.
// Both must have Len() elements; they may be the same slice.
func (p *Plan[T]) TransformInto(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst %d, src %d, plan size %d", ErrLengthMismatch, len(dst), len(src), p.n)
	}

	copy(dst, src)
	p.kernel(dst)

	return nil
}

// TransformBatch transforms consecutive Len()-element vectors of buf in
// place. len(buf) must be a positive multiple of Len().
func (p *Plan[T]) TransformBatch(buf []T) error {
	if buf == nil {
		return ErrNilSlice
	}

	if len(buf) == 0 || len(buf)%p.n != 0 {
		return fmt.Errorf("%w: %d elements is not a batch of size-%d vectors", ErrLengthMismatch, len(buf), p.n)
	}

	for off := 0; off < len(buf); off += p.n {
		p.kernel(buf[off : off+p.n])
	}

	return nil
}
