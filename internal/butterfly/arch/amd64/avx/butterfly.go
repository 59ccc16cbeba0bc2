//go:build amd64 && !purego

// Package avx implements the 256-bit butterfly stage (8 x float32, 4 x float64).
// Only AVX1 instructions are used.
package avx

import "github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"

const (
	lanes32 = 8
	lanes64 = 4
)

// Butterfly32 computes lo[i], hi[i] = lo[i]+hi[i], lo[i]-hi[i] eight lanes at
// a time; the tail goes through the scalar stage.
func Butterfly32(lo, hi []float32) {
	hi = hi[:len(lo)]
	n := len(lo) &^ (lanes32 - 1)
	if n > 0 {
		butterfly32AVX(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block32 runs passes 0, 1 and 2 on every 8-element block of buf.
// Panics if len(buf) is not a multiple of 8.
func Block32(buf []float32) {
	if len(buf)%lanes32 != 0 {
		panic("avx: block length not a multiple of 8")
	}
	if len(buf) == 0 {
		return
	}
	block32AVX(buf)
}

// Butterfly64 is the float64 counterpart of Butterfly32 (four lanes).
func Butterfly64(lo, hi []float64) {
	hi = hi[:len(lo)]
	n := len(lo) &^ (lanes64 - 1)
	if n > 0 {
		butterfly64AVX(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block64 runs passes 0 and 1 on every 4-element block of buf.
// Panics if len(buf) is not a multiple of 4.
func Block64(buf []float64) {
	if len(buf)%lanes64 != 0 {
		panic("avx: block length not a multiple of 4")
	}
	if len(buf) == 0 {
		return
	}
	block64AVX(buf)
}

//go:noescape
func butterfly32AVX(lo, hi []float32)

//go:noescape
func block32AVX(buf []float32)

//go:noescape
func butterfly64AVX(lo, hi []float64)

//go:noescape
func block64AVX(buf []float64)
