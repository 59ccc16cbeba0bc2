package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// BitExact compares floats by their IEEE-754 bit patterns, so +0 and -0
// differ and identical NaNs match.
var BitExact = cmp.Options{
	cmp.Comparer(func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }),
	cmp.Comparer(func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }),
}

// RequireBitIdentical fails t if got and want are not bit-for-bit equal.
func RequireBitIdentical[T fhtypes.Float](t testing.TB, got, want []T) {
	t.Helper()
	if diff := cmp.Diff(want, got, BitExact); diff != "" {
		t.Fatalf("results differ (-want +got):\n%s", diff)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T fhtypes.Float](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T fhtypes.Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T fhtypes.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// TransformTolerance returns an absolute error bound for a length-n
// transform of values bounded by amplitude in precision T. Each output is a
// sum of n terms accumulated over log2(n) rounding steps.
func TransformTolerance[T fhtypes.Float](n int, amplitude float64) float64 {
	eps := 1e-15
	if fhtypes.WidthOf[T]() == 32 {
		eps = 1e-6
	}
	logN := 0
	for 1<<logN < n {
		logN++
	}
	return eps * amplitude * float64(n) * float64(logN+1)
}
