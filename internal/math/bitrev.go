// Package math holds the integer helpers shared by the transform layers:
// power-of-two sizing and the index permutations between Hadamard orderings.
package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a positive power of two n, and -1 otherwise.
func Log2(n int) int {
	if !IsPowerOf2(n) {
		return -1
	}
	return bits.TrailingZeros(uint(n))
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// Gray returns the reflected binary Gray code of x.
func Gray(x int) int {
	return x ^ (x >> 1)
}

// ComputeSequencyIndices returns idx such that idx[k] is the natural-order
// (Sylvester) row whose Walsh function has exactly k sign changes:
// idx[k] = ReverseBits(Gray(k), log2(n)). Returns nil unless n is a power of two.
func ComputeSequencyIndices(n int) []int {
	logN := Log2(n)
	if logN < 0 {
		return nil
	}

	idx := make([]int, n)
	for k := range n {
		idx[k] = ReverseBits(Gray(k), logN)
	}

	return idx
}
