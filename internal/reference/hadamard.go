// Package reference provides a direct O(N^2) Hadamard matrix product used
// as ground truth in tests.
package reference

import (
	"math/bits"

	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Entry returns H[i][j] of the unnormalized Sylvester Hadamard matrix:
// (-1)^popcount(i AND j).
func Entry(i, j int) int {
	if bits.OnesCount(uint(i&j))%2 == 0 {
		return 1
	}
	return -1
}

// Hadamard returns H*x accumulated in float64. len(x) must be a power of two.
func Hadamard[T fhtypes.Float](x []T) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i := range out {
		var sum float64
		for j, v := range x {
			if Entry(i, j) > 0 {
				sum += float64(v)
			} else {
				sum -= float64(v)
			}
		}
		out[i] = sum
	}
	return out
}

// HadamardAs is Hadamard converted back to T.
func HadamardAs[T fhtypes.Float](x []T) []T {
	wide := Hadamard(x)
	out := make([]T, len(wide))
	for i, v := range wide {
		out[i] = T(v)
	}
	return out
}
