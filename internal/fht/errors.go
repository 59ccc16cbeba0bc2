package fht

import (
	"errors"
	"fmt"

	m "github.com/cwbudde/algo-fht/internal/math"
)

// MaxLogN is the largest supported log2 size.
const MaxLogN = 30

// Sentinel errors. Callers match them with errors.Is; validation failures
// wrap them with the offending value.
var (
	// ErrInvalidLength: the size is zero, negative, or not a power of two.
	ErrInvalidLength = errors.New("fht: invalid length")

	// ErrSizeTooLarge: log2 of the size exceeds MaxLogN.
	ErrSizeTooLarge = errors.New("fht: size too large")

	// ErrNilSlice: a nil buffer was passed.
	ErrNilSlice = errors.New("fht: nil slice")

	// ErrLengthMismatch: a buffer is shorter than the declared size, or
	// source and destination lengths differ.
	ErrLengthMismatch = errors.New("fht: slice length mismatch")

	// ErrInvalidStride: a stride is < 1 or does not fit the buffer.
	ErrInvalidStride = errors.New("fht: invalid stride")

	// ErrUnsupportedWidth: the element width is neither 32 nor 64 bits.
	ErrUnsupportedWidth = errors.New("fht: unsupported element width")

	// ErrNotImplemented: a forced strategy has no kernel for the size.
	ErrNotImplemented = errors.New("fht: not implemented")
)

// ValidateLogN checks a log2 size.
func ValidateLogN(logN int) error {
	if logN < 0 {
		return fmt.Errorf("%w: log_n %d is negative", ErrInvalidLength, logN)
	}
	if logN > MaxLogN {
		return fmt.Errorf("%w: log_n %d exceeds %d", ErrSizeTooLarge, logN, MaxLogN)
	}
	return nil
}

// LogNForLength returns log2(n) for a valid transform length n.
func LogNForLength(n int) (int, error) {
	logN := m.Log2(n)
	if logN < 0 {
		return 0, fmt.Errorf("%w: %d is not a positive power of two", ErrInvalidLength, n)
	}

	if err := ValidateLogN(logN); err != nil {
		return 0, err
	}

	return logN, nil
}
