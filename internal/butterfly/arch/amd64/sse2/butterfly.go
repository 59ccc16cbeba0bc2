//go:build amd64 && !purego

// Package sse2 implements the 128-bit butterfly stage (4 x float32, 2 x float64).
package sse2

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
		butterfly32SSE2(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block32 runs passes 0 and 1 on every 4-element block of buf.
// Panics if len(buf) is not a multiple of 4.
func Block32(buf []float32) {
	if len(buf)%lanes32 != 0 {
		panic("sse2: block length not a multiple of 4")
	}
	if len(buf) == 0 {
		return
	}
	block32SSE2(buf)
}

// Butterfly64 is the float64 counterpart of Butterfly32 (two lanes).
func Butterfly64(lo, hi []float64) {
	hi = hi[:len(lo)]
	n := len(lo) &^ (lanes64 - 1)
	if n > 0 {
		butterfly64SSE2(lo[:n], hi[:n])
	}
	if n < len(lo) {
		generic.Butterfly(lo[n:], hi[n:])
	}
}

// Block64 runs pass 0 on every 2-element block of buf.
// Panics if len(buf) is odd.
func Block64(buf []float64) {
	if len(buf)%lanes64 != 0 {
		panic("sse2: block length not a multiple of 2")
	}
	if len(buf) == 0 {
		return
	}
	block64SSE2(buf)
}

//go:noescape
func butterfly32SSE2(lo, hi []float32)

//go:noescape
func block32SSE2(buf []float32)

//go:noescape
func butterfly64SSE2(lo, hi []float64)

//go:noescape
func block64SSE2(buf []float64)
