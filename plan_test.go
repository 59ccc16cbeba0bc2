package algofht

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
	"github.com/cwbudde/algo-fht/internal/testutil"
)

func TestNewPlanValidation(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -4, 3, 6, 100} {
		if _, err := NewPlan[float32](n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewPlan(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}

	plan, err := NewPlan[float64](256)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Len() != 256 || plan.LogN() != 8 {
		t.Errorf("plan Len/LogN = %d/%d, want 256/8", plan.Len(), plan.LogN())
	}
}

func TestPlanInfo(t *testing.T) {
	t.Parallel()

	small, err := NewPlanWithOptions[float32](64, PlanOptions{Strategy: StrategyCodelet})
	if err != nil {
		t.Fatal(err)
	}
	if info := small.Info(); info.Kind != KernelCodelet || info.LogN != 6 {
		t.Errorf("codelet plan info = %+v", info)
	}

	scalar, err := NewPlanWithOptions[float64](1<<12, PlanOptions{Strategy: StrategyScalar})
	if err != nil {
		t.Fatal(err)
	}
	if info := scalar.Info(); info.Kind != KernelScalar || info.Stage != "generic" || info.Lanes != 1 {
		t.Errorf("scalar plan info = %+v", info)
	}

	if _, err := NewPlanWithOptions[float32](1<<10, PlanOptions{Strategy: StrategyCodelet}); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("forced codelet for n=1024 error = %v, want ErrNotImplemented", err)
	}
}

func TestPlanStrategiesBitIdentical(t *testing.T) {
	t.Parallel()

	strategies := []Strategy{StrategyAuto, StrategyCodelet, StrategyVector, StrategyScalar}

	for _, logN := range []int{0, 2, 5, 7, 8, 11, 13} {
		n := 1 << logN
		input := testutil.DeterministicNoise[float64](int64(n), 100, n)
		want := testutil.Clone(input)
		generic.Transform(want, logN)

		for _, strategy := range strategies {
			t.Run(fmt.Sprintf("%s/n=%d", strategy, n), func(t *testing.T) {
				t.Parallel()

				plan, err := NewPlanWithOptions[float64](n, PlanOptions{Strategy: strategy})
				if errors.Is(err, ErrNotImplemented) {
					t.Skipf("no %s kernel for n=%d", strategy, n)
				}
				if err != nil {
					t.Fatal(err)
				}

				buf := testutil.Clone(input)
				if err := plan.Transform(buf); err != nil {
					t.Fatal(err)
				}
				testutil.RequireBitIdentical(t, buf, want)

				inPlace := testutil.Clone(input)
				plan.InPlace(inPlace)
				testutil.RequireBitIdentical(t, inPlace, want)
			})
		}
	}
}

func TestPlanTransformErrors(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[float32](8)
	if err != nil {
		t.Fatal(err)
	}

	if err := plan.Transform(nil); !errors.Is(err, ErrNilSlice) {
		t.Errorf("Transform(nil) error = %v", err)
	}
	if err := plan.Transform(make([]float32, 16)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Transform(len 16) error = %v", err)
	}
	if err := plan.TransformInto(make([]float32, 8), make([]float32, 4)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("TransformInto mismatch error = %v", err)
	}
	if err := plan.TransformBatch(make([]float32, 12)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("TransformBatch(len 12) error = %v", err)
	}
	if err := plan.TransformBatch([]float32{}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("TransformBatch(empty) error = %v", err)
	}
}

func TestPlanTransformInto(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[float64](16)
	if err != nil {
		t.Fatal(err)
	}

	src := testutil.DeterministicNoise[float64](9, 1, 16)
	orig := testutil.Clone(src)
	dst := make([]float64, 16)

	if err := plan.TransformInto(dst, src); err != nil {
		t.Fatal(err)
	}

	want := testutil.Clone(orig)
	plan.InPlace(want)

	testutil.RequireBitIdentical(t, dst, want)
	testutil.RequireBitIdentical(t, src, orig)

	// aliasing is allowed
	if err := plan.TransformInto(src, src); err != nil {
		t.Fatal(err)
	}
	testutil.RequireBitIdentical(t, src, want)
}

func TestPlanTransformBatch(t *testing.T) {
	t.Parallel()

	const (
		n     = 512
		count = 5
	)

	plan, err := NewPlan[float32](n)
	if err != nil {
		t.Fatal(err)
	}

	batch := testutil.DeterministicNoise[float32](4, 1, n*count)
	want := testutil.Clone(batch)
	for i := 0; i < count; i++ {
		plan.InPlace(want[i*n : (i+1)*n])
	}

	if err := plan.TransformBatch(batch); err != nil {
		t.Fatal(err)
	}
	testutil.RequireBitIdentical(t, batch, want)
}

func TestPlanInPlaceCodeletDoesNotAllocate(t *testing.T) {
	plan, err := NewPlanWithOptions[float32](64, PlanOptions{Strategy: StrategyCodelet})
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 64)
	allocs := testing.AllocsPerRun(100, func() {
		plan.InPlace(buf)
	})

	if allocs != 0 {
		t.Errorf("InPlace allocated %v times per run, want 0", allocs)
	}
}

func TestPlanInPlacePanicsOnShortBuffer(t *testing.T) {
	t.Parallel()

	for _, strategy := range []Strategy{StrategyCodelet, StrategyScalar} {
		plan, err := NewPlanWithOptions[float64](32, PlanOptions{Strategy: strategy})
		if err != nil {
			t.Fatal(err)
		}

		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: InPlace on a short buffer did not panic", strategy)
				}
			}()
			plan.InPlace(make([]float64, 16))
		}()
	}
}

func BenchmarkPlanInPlace(b *testing.B) {
	for _, logN := range []int{5, 10, 14, 20} {
		n := 1 << logN
		plan, err := NewPlan[float32](n)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n=%d/%s", n, plan.Info().Stage), func(b *testing.B) {
			buf := testutil.DeterministicNoise[float32](1, 1, n)
			b.SetBytes(int64(n) * 4)
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				plan.InPlace(buf)
			}
		})
	}
}
