package algofht

import "github.com/cwbudde/algo-fht/internal/fht"

// MaxLogN is the largest supported log2 transform size (N = 2^30).
const MaxLogN = fht.MaxLogN

// Sentinel errors returned by transform operations. Returned errors wrap
// them, so match with errors.Is.
var (
	// ErrInvalidLength is returned when the size is zero, negative, or not
	// a power of two.
	ErrInvalidLength = fht.ErrInvalidLength

	// ErrSizeTooLarge is returned when log2 of the size exceeds MaxLogN.
	ErrSizeTooLarge = fht.ErrSizeTooLarge

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = fht.ErrNilSlice

	// ErrLengthMismatch is returned when a buffer does not match the
	// declared or planned size.
	ErrLengthMismatch = fht.ErrLengthMismatch

	// ErrInvalidStride is returned when a stride is < 1 or its span
	// overflows the index range.
	ErrInvalidStride = fht.ErrInvalidStride

	// ErrUnsupportedType is returned by TransformAny for element types
	// other than float32 and float64.
	ErrUnsupportedType = fht.ErrUnsupportedWidth

	// ErrNotImplemented is returned when a forced strategy has no kernel
	// for the requested size or CPU.
	ErrNotImplemented = fht.ErrNotImplemented

	// ErrInvalidWisdom is returned when wisdom data cannot be parsed.
	ErrInvalidWisdom = fht.ErrInvalidWisdom
)
