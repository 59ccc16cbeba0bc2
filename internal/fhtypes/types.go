// Package fhtypes holds the small set of types shared by the transform
// packages: the element constraint, kernel signatures and dispatch strategies.
package fhtypes

// Float is the element constraint of every transform entry point.
// Only the two IEEE binary formats are supported.
type Float interface {
	float32 | float64
}

// WidthOf returns the element width in bits of T.
func WidthOf[T Float]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 32
	default:
		return 64
	}
}
