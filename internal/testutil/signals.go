// Package testutil provides deterministic inputs and comparison helpers
// shared by the transform tests.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// DeterministicNoise returns length uniform values in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise[T fhtypes.Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// SmallIntegers returns length integers in [-limit, limit] from a fixed seed.
// Sums of such values stay exact in both precisions for the sizes under test,
// so transforms of them can be compared with ==.
func SmallIntegers[T fhtypes.Float](seed int64, limit, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(rng.Intn(2*limit+1) - limit)
	}
	return out
}

// Impulse returns a unit impulse at pos.
func Impulse[T fhtypes.Float](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns a constant-valued slice.
func DC[T fhtypes.Float](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Alternating returns 1, -1, 1, -1, ...
func Alternating[T fhtypes.Float](length int) []T {
	out := make([]T, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Clone returns a copy of s. A non-nil empty input gives a non-nil empty
// copy, so bit-exact comparisons against the original still hold.
func Clone[T fhtypes.Float](s []T) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	copy(out, s)

	return out
}
