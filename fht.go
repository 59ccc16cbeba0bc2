// Package algofht computes the Fast Hadamard Transform of float32 and
// float64 vectors whose length is a power of two.
//
// The transform multiplies the input by the unnormalized Sylvester
// Hadamard matrix, H[i][j] = (-1)^popcount(i&j), in place and in
// O(N log N). Output is not scaled: applying the transform twice returns
// the input multiplied by N.
//
// Kernels are selected from the CPU capabilities detected at first use:
// straight-line codelets for N <= 128, otherwise a pass driver over the
// widest available SIMD butterfly stage (SSE2 or AVX on amd64, NEON on
// arm64) or the scalar stage. Every kernel produces bit-identical results.
// Build with -tags purego, or set FHT_NO_SIMD, to use only pure Go.
package algofht

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
	m "github.com/cwbudde/algo-fht/internal/math"
)

// Transform computes the Hadamard transform of buf in place.
//
// Returns ErrNilSlice for a nil buf, ErrInvalidLength if len(buf) is zero or
// not a power of two, and ErrSizeTooLarge above 2^MaxLogN elements.
func Transform[T Float](buf []T) error {
	if buf == nil {
		return ErrNilSlice
	}

	logN, err := fht.LogNForLength(len(buf))
	if err != nil {
		return err
	}

	return run(buf, logN)
}

// TransformLogN transforms buf[:2^logN] in place; elements past 2^logN are
// untouched. logN = 0 is the identity.
//
// Returns ErrInvalidLength for negative logN, ErrSizeTooLarge for
// logN > MaxLogN and ErrLengthMismatch if buf holds fewer than 2^logN elements.
func TransformLogN[T Float](buf []T, logN int) error {
	if buf == nil {
		return ErrNilSlice
	}

	if err := fht.ValidateLogN(logN); err != nil {
		return err
	}

	if n := 1 << logN; len(buf) < n {
		return fmt.Errorf("%w: buffer holds %d elements, log_n %d needs %d", ErrLengthMismatch, len(buf), logN, n)
	}

	return run(buf, logN)
}

// TransformFloat32 is Transform for single precision.
func TransformFloat32(buf []float32) error {
	return Transform(buf)
}

// TransformFloat64 is Transform for double precision.
func TransformFloat64(buf []float64) error {
	return Transform(buf)
}

// TransformInto writes the transform of src to dst, leaving src unchanged.
// dst and src must have the same length; they may be the same slice.
func TransformInto[T Float](dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d elements, src has %d", ErrLengthMismatch, len(dst), len(src))
	}

	logN, err := fht.LogNForLength(len(src))
	if err != nil {
		return err
	}

	copy(dst, src)

	return run(dst, logN)
}

// TransformAny transforms a []float32 or []float64 passed as an interface
// value. Any other type returns ErrUnsupportedType.
func TransformAny(buf any) error {
	switch v := buf.(type) {
	case []float32:
		return Transform(v)
	case []float64:
		return Transform(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, buf)
	}
}

// SequencyOrder reorders natural-order coefficients in src into sequency
// (Walsh) order in dst: dst[k] is the coefficient of the basis vector with
// k sign changes. dst and src must have the same power-of-two length.
// They may share or partially overlap storage; src is then read from a copy.
func SequencyOrder[T Float](dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d elements, src has %d", ErrLengthMismatch, len(dst), len(src))
	}

	if _, err := fht.LogNForLength(len(src)); err != nil {
		return err
	}

	if overlaps(dst, src) {
		src = append([]T(nil), src...)
	}

	for k, i := range m.ComputeSequencyIndices(len(src)) {
		dst[k] = src[i]
	}

	return nil
}

// overlaps reports whether a and b share any element of backing storage.
func overlaps[T Float](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))

	return aStart < bStart+uintptr(len(b))*size && bStart < aStart+uintptr(len(a))*size
}

func run[T Float](buf []T, logN int) error {
	features := cpu.DetectFeatures()
	bits := fhtypes.WidthOf[T]()

	strategy := fht.Resolve(fht.DefaultWisdom, bits, logN, features, StrategyAuto)

	_, err := fht.Transform(buf, logN, features, strategy)
	if err != nil && strategy != StrategyAuto {
		// recorded wisdom that no longer applies (e.g. FHT_NO_SIMD)
		_, err = fht.Transform(buf, logN, features, StrategyAuto)
	}

	return err
}
