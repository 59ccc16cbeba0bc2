//go:build arm64 && !purego

package neon

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
	"github.com/cwbudde/algo-fht/internal/testutil"
)

func TestButterfly32_NEON(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3, 4, 5, 8, 17, 64, 100, 1027} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			lo := testutil.DeterministicNoise[float32](int64(n), 1, n)
			hi := testutil.DeterministicNoise[float32](int64(n)+1000, 1, n)
			wantLo, wantHi := testutil.Clone(lo), testutil.Clone(hi)

			Butterfly32(lo, hi)
			generic.Butterfly(wantLo, wantHi)

			testutil.RequireBitIdentical(t, lo, wantLo)
			testutil.RequireBitIdentical(t, hi, wantHi)
		})
	}
}

func TestButterfly64_NEON(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 8, 33} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			lo := testutil.DeterministicNoise[float64](int64(n), 1e3, n)
			hi := testutil.DeterministicNoise[float64](int64(n)+1000, 1e-3, n)
			wantLo, wantHi := testutil.Clone(lo), testutil.Clone(hi)

			Butterfly64(lo, hi)
			generic.Butterfly(wantLo, wantHi)

			testutil.RequireBitIdentical(t, lo, wantLo)
			testutil.RequireBitIdentical(t, hi, wantHi)
		})
	}
}

func TestBlock32_NEON(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 64, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			buf := testutil.DeterministicNoise[float32](int64(n), 10, n)
			want := testutil.Clone(buf)

			Block32(buf)
			generic.Pass(want, 0)
			generic.Pass(want, 1)

			testutil.RequireBitIdentical(t, buf, want)
		})
	}
}

func TestBlock64_NEON(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 64, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			buf := testutil.DeterministicNoise[float64](int64(n), 10, n)
			want := testutil.Clone(buf)

			Block64(buf)
			generic.Pass(want, 0)

			testutil.RequireBitIdentical(t, buf, want)
		})
	}
}

func TestBlock32PanicsOnPartialBlock(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Block32 with len 6 did not panic")
		}
	}()

	Block32(make([]float32, 6))
}

func TestBlockSignedZerosAndInfinities(t *testing.T) {
	t.Parallel()

	negZero := float32(math.Copysign(0, -1))
	inf := float32(math.Inf(1))

	buf32 := []float32{negZero, 0, inf, 1, 0, negZero, -2, negZero}
	want32 := testutil.Clone(buf32)
	Block32(buf32)
	generic.Pass(want32, 0)
	generic.Pass(want32, 1)
	testutil.RequireBitIdentical(t, buf32, want32)

	buf64 := []float64{math.Copysign(0, -1), 0, 0, math.Copysign(0, -1), math.Inf(-1), 3}
	want64 := testutil.Clone(buf64)
	Block64(buf64)
	generic.Pass(want64, 0)
	testutil.RequireBitIdentical(t, buf64, want64)
}

func TestBlock64PanicsOnPartialBlock(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Block64 with len 3 did not panic")
		}
	}()

	Block64(make([]float64, 3))
}

func BenchmarkButterfly32_NEON(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			lo := make([]float32, n)
			hi := make([]float32, n)
			b.SetBytes(int64(n) * 8)
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				Butterfly32(lo, hi)
			}
		})
	}
}
