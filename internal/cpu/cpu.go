// Package cpu provides CPU feature detection for Hadamard kernel selection.
//
// The detected feature set is the process-wide capability descriptor: it is
// computed once on the first call to DetectFeatures and never changes
// afterwards, except through the test-only SetForcedFeatures override.
package cpu

import (
	"os"
	"sync"
	"sync/atomic"
)

// NoSIMDEnv names the environment variable that disables every vector stage.
// Any non-empty value forces the scalar stage.
const NoSIMDEnv = "FHT_NO_SIMD"

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not comparable across architectures (AVX vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go scalar stage).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 128-bit).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (256-bit floating point).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD (128-bit).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseSIMDLevel is the inverse of SIMDLevel.String.
func ParseSIMDLevel(name string) (SIMDLevel, bool) {
	for level := SIMDNone; level <= SIMDNEON; level++ {
		if level.String() == name {
			return level, true
		}
	}
	return SIMDNone, false
}

// Features describes CPU capabilities relevant to butterfly stage selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables every vector stage.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// VectorBits reports the widest register width usable by the butterfly
// stages: 0 (scalar only), 128 or 256.
func (f Features) VectorBits() int {
	switch {
	case f.ForceGeneric:
		return 0
	case f.HasAVX:
		return 256
	case f.HasSSE2, f.HasNEON:
		return 128
	default:
		return 0
	}
}

// Level returns the most capable SIMD level the features allow for the
// butterfly stages.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

var (
	detected atomic.Pointer[Features]
	forced   atomic.Pointer[Features]

	// detectMutex serializes the first detection only.
	detectMutex sync.Mutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection runs once and is cached; later calls are a single atomic load.
// Setting FHT_NO_SIMD before the first call sets ForceGeneric. Safe for
// concurrent use.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}

	if f := detected.Load(); f != nil {
		return *f
	}

	return detectSlow()
}

func detectSlow() Features {
	detectMutex.Lock()
	defer detectMutex.Unlock()

	if f := detected.Load(); f != nil {
		return *f
	}

	f := detectFeaturesImpl()
	if noSIMD(os.Getenv(NoSIMDEnv)) {
		f.ForceGeneric = true
	}
	detected.Store(&f)

	return f
}

func noSIMD(value string) bool {
	return value != ""
}

// HasAVX returns true if the CPU and OS support 256-bit AVX instructions.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forced.Store(nil)
	detected.Store(nil)
}

// Supports returns true if the given CPU features support the specified SIMD level.
// The butterfly registry uses it to filter stage entries.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
