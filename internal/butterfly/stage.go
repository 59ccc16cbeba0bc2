// Package butterfly binds registered stage entries to a concrete float type.
//
// Importing this package pulls in the arch packages for the current build
// (see init_*.go), so the registry is complete before any Lookup.
package butterfly

import (
	"github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
	"github.com/cwbudde/algo-fht/internal/butterfly/registry"
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Stage is one butterfly stage implementation for element type T.
//
// Lanes is the register width in elements. For Lanes > 1, Block runs passes
// 0 .. log2(Lanes)-1 on every Lanes-sized block and Butterfly handles the
// separated-stride passes. The scalar stage has Lanes 1 and a nil Block.
type Stage[T fhtypes.Float] struct {
	Name      string
	Level     cpu.SIMDLevel
	Lanes     int
	Butterfly func(lo, hi []T)
	Block     func(buf []T)
}

// Vector reports whether s runs passes in SIMD registers.
func (s Stage[T]) Vector() bool {
	return s.Lanes > 1 && s.Block != nil
}

// Scalar returns the scalar stage for T.
func Scalar[T fhtypes.Float]() Stage[T] {
	return Stage[T]{
		Name:      "generic",
		Level:     cpu.SIMDNone,
		Lanes:     1,
		Butterfly: generic.Butterfly[T],
	}
}

// Best returns the highest-priority stage registered for T that features
// supports. It falls back to the scalar stage if the registry holds nothing
// usable.
func Best[T fhtypes.Float](features cpu.Features) Stage[T] {
	entry := registry.Global.Lookup(features, fhtypes.WidthOf[T]())
	if entry == nil {
		return Scalar[T]()
	}
	return FromEntry[T](entry)
}

// FromEntry binds the precision-specific functions of entry to T.
// Returns the scalar stage if entry has no kernels for T.
func FromEntry[T fhtypes.Float](entry *registry.Entry) Stage[T] {
	var zero T

	stage := Stage[T]{Name: entry.Name, Level: entry.SIMDLevel}

	switch any(zero).(type) {
	case float32:
		stage.Lanes = entry.Lanes32
		if entry.Butterfly32 != nil {
			stage.Butterfly = any(entry.Butterfly32).(func(lo, hi []T))
		}
		if entry.Block32 != nil {
			stage.Block = any(entry.Block32).(func(buf []T))
		}
	case float64:
		stage.Lanes = entry.Lanes64
		if entry.Butterfly64 != nil {
			stage.Butterfly = any(entry.Butterfly64).(func(lo, hi []T))
		}
		if entry.Block64 != nil {
			stage.Block = any(entry.Block64).(func(buf []T))
		}
	}

	if stage.Butterfly == nil || (stage.Lanes > 1 && stage.Block == nil) {
		return Scalar[T]()
	}
	if stage.Lanes < 1 {
		stage.Lanes = 1
	}

	return stage
}

// Available returns every registered stage with kernels for T that features
// supports, highest priority first.
func Available[T fhtypes.Float](features cpu.Features) []Stage[T] {
	bits := fhtypes.WidthOf[T]()

	var stages []Stage[T]
	for _, entry := range registry.Global.ListEntries() {
		if !cpu.Supports(features, entry.SIMDLevel) || !entry.Supports(bits) {
			continue
		}
		stages = append(stages, FromEntry[T](&entry))
	}

	return stages
}
