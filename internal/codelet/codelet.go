// Package codelet provides straight-line Hadamard transforms for sizes
// up to 2^MaxLog.
//
// The kernels live in codelet_gen.go, written by cmd/fhtgen. They perform the
// same pass sequence as the butterfly drivers, so their output is
// bit-identical to the scalar stage.
package codelet

//go:generate go run ../../cmd/fhtgen -output codelet_gen.go

import "github.com/cwbudde/algo-fht/internal/fhtypes"

var (
	table32 = table[float32]()
	table64 = table[float64]()
)

// identity is the size-1 transform.
func identity[T fhtypes.Float](buf []T) {}

// Lookup returns the codelet transforming exactly 2^logN elements, or nil if
// logN is outside [0, MaxLog]. The returned function panics if its buffer is
// shorter than 2^logN.
func Lookup[T fhtypes.Float](logN int) fhtypes.CodeletFunc[T] {
	if logN < 0 || logN > MaxLog {
		return nil
	}

	var zero T
	switch any(zero).(type) {
	case float32:
		return any(table32[logN]).(fhtypes.CodeletFunc[T])
	case float64:
		return any(table64[logN]).(fhtypes.CodeletFunc[T])
	}

	return nil
}

// Has reports whether a codelet exists for logN.
func Has(logN int) bool {
	return logN >= 0 && logN <= MaxLog
}
