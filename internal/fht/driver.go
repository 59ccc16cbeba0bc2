// Package fht contains the transform drivers and the dispatcher that picks
// a kernel for a (width, size, capability, strategy) tuple.
package fht

import (
	"math/bits"

	"github.com/cwbudde/algo-fht/internal/butterfly"
	"github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// LeafLog is the largest log2 size Recursive hands to Iterative. 2^12
// float64 values fill a 32 KiB L1 data cache.
const LeafLog = 12

// Iterative transforms buf[:1<<logN] pass by pass.
//
// With a vector stage, Block covers passes 0 .. log2(Lanes)-1 on each
// register-sized block and every later pass uses the separated-stride
// Butterfly. With the scalar stage, or when the buffer is narrower than one
// register, every pass goes through the scalar primitive.
func Iterative[T fhtypes.Float](buf []T, logN int, stage butterfly.Stage[T]) {
	n := 1 << logN
	buf = buf[:n]

	p := 0
	if stage.Vector() && n >= stage.Lanes {
		stage.Block(buf)
		p = bits.TrailingZeros(uint(stage.Lanes))
	}

	for ; p < logN; p++ {
		s := 1 << p
		if !stage.Vector() || s < stage.Lanes {
			generic.Pass(buf, p)
			continue
		}

		for j := 0; j < n; j += 2 * s {
			stage.Butterfly(buf[j:j+s], buf[j+s:j+2*s])
		}
	}
}

// Recursive transforms both halves of buf[:1<<logN] recursively, then
// combines them at stride N/2. Sizes up to LeafLog use Iterative.
// Each element sees the same operations in the same order as with
// Iterative, so results are bit-identical.
func Recursive[T fhtypes.Float](buf []T, logN int, stage butterfly.Stage[T]) {
	if logN <= LeafLog {
		Iterative(buf, logN, stage)
		return
	}

	half := 1 << (logN - 1)
	buf = buf[:2*half]

	Recursive(buf[:half], logN-1, stage)
	Recursive(buf[half:], logN-1, stage)
	stage.Butterfly(buf[:half], buf[half:])
}

// Run transforms buf[:1<<logN] with the driver suited to the size.
func Run[T fhtypes.Float](buf []T, logN int, stage butterfly.Stage[T]) {
	if logN <= LeafLog {
		Iterative(buf, logN, stage)
		return
	}
	Recursive(buf, logN, stage)
}
