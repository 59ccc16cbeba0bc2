// Package generic implements the scalar butterfly stage.
//
// The scalar stage is the reference for every vectorized stage: all of them
// must produce bit-identical output for the same input.
package generic

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// Butterfly combines two equal-length blocks in place:
// lo[i], hi[i] = lo[i]+hi[i], lo[i]-hi[i].
// hi must be at least as long as lo.
func Butterfly[T fhtypes.Float](lo, hi []T) {
	hi = hi[:len(lo)]
	for i := range lo {
		a, b := lo[i], hi[i]
		lo[i] = a + b
		hi[i] = a - b
	}
}

// Pass performs pass p of the transform over buf: every pair of elements at
// stride 2^p inside each 2^(p+1) segment is replaced by (a+b, a-b).
// len(buf) must be a multiple of 2^(p+1); a trailing partial segment is
// left untouched.
func Pass[T fhtypes.Float](buf []T, p int) {
	s := 1 << p
	if s == 1 {
		for j := 0; j+1 < len(buf); j += 2 {
			a, b := buf[j], buf[j+1]
			buf[j] = a + b
			buf[j+1] = a - b
		}
		return
	}

	for j := 0; j+2*s <= len(buf); j += 2 * s {
		Butterfly(buf[j:j+s], buf[j+s:j+2*s])
	}
}

// Transform runs passes 0 .. logN-1 over buf[:1<<logN] with the scalar
// stage only.
func Transform[T fhtypes.Float](buf []T, logN int) {
	buf = buf[:1<<logN]
	for p := 0; p < logN; p++ {
		Pass(buf, p)
	}
}
