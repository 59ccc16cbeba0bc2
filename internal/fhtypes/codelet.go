package fhtypes

// CodeletFunc is a fully unrolled transform for one fixed size.
// Codelets perform no runtime checks; the caller guarantees len(buf) >= 2^logN.
type CodeletFunc[T Float] func(buf []T)

// KernelFunc is a transform bound to a size by the dispatcher.
// Like CodeletFunc it does not validate its input.
type KernelFunc[T Float] func(buf []T)
