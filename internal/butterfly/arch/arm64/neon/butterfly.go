//go:build arm64 && !purego

// Package neon implements the 128-bit arm64 butterfly stage (4 x float32,
// 2 x float64).
//
// The Go arm64 assembler has no mnemonics for vector FADD, FSUB, TRN or ZIP,
// so butterfly_arm64.s emits them as WORD-encoded instructions next to the
// native VLD1/VST1 loads and stores.
package neon

import "github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"

const (
	lanes32 = 4
	lanes64 = 2
)

// Butterfly32 computes lo[i], hi[i] = lo[i]+hi[i], lo[i]-hi[i] four lanes at
// a time. Elements past the last full register are handled by the scalar stage.
func Butterfly32(lo, hi []float32) {
	hi = hi[:len(lo)]
	n := len(lo) &^ (lanes32 - 1)
	if n > 0 {
		butterfly32NEON(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block32 runs passes 0 and 1 on every 4-element block of buf.
// Panics if len(buf) is not a multiple of 4.
func Block32(buf []float32) {
	if len(buf)%lanes32 != 0 {
		panic("neon: block length not a multiple of 4")
	}
	if len(buf) == 0 {
		return
	}
	block32NEON(buf)
}

// Butterfly64 is the float64 counterpart of Butterfly32 (two lanes).
func Butterfly64(lo, hi []float64) {
	hi = hi[:len(lo)]
	n := len(lo) &^ (lanes64 - 1)
	if n > 0 {
		butterfly64NEON(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block64 runs pass 0 on every 2-element block of buf.
// Panics if len(buf) is odd.
func Block64(buf []float64) {
	if len(buf)%lanes64 != 0 {
		panic("neon: block length not a multiple of 2")
	}
	if len(buf) == 0 {
		return
	}
	block64NEON(buf)
}

//go:noescape
func butterfly32NEON(lo, hi []float32)

//go:noescape
func block32NEON(buf []float32)

//go:noescape
func butterfly64NEON(lo, hi []float64)

//go:noescape
func block64NEON(buf []float64)
