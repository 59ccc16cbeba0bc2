package fht

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fht/internal/butterfly"
	"github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
	"github.com/cwbudde/algo-fht/internal/codelet"
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
	"github.com/cwbudde/algo-fht/internal/testutil"
)

func TestSelectWidthErrors(t *testing.T) {
	t.Parallel()

	features := cpu.DetectFeatures()
	scalarOnly := cpu.Features{ForceGeneric: true}

	tests := []struct {
		name     string
		bits     int
		logN     int
		features cpu.Features
		strategy fhtypes.Strategy
		want     error
	}{
		{"16-bit", 16, 4, features, fhtypes.StrategyAuto, ErrUnsupportedWidth},
		{"128-bit", 128, 4, features, fhtypes.StrategyAuto, ErrUnsupportedWidth},
		{"negative log", 32, -1, features, fhtypes.StrategyAuto, ErrInvalidLength},
		{"log 31", 64, MaxLogN + 1, features, fhtypes.StrategyAuto, ErrSizeTooLarge},
		{"codelet too large", 32, codelet.MaxLog + 1, features, fhtypes.StrategyCodelet, ErrNotImplemented},
		{"vector forced off", 64, 10, scalarOnly, fhtypes.StrategyVector, ErrNotImplemented},
		{"unknown strategy", 32, 10, features, fhtypes.Strategy(99), ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := SelectWidth(tt.bits, tt.logN, tt.features, tt.strategy)
			if !errors.Is(err, tt.want) {
				t.Fatalf("SelectWidth error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSelectWidthAutoPolicy(t *testing.T) {
	t.Parallel()

	forced := cpu.Features{HasSSE2: true, HasAVX: true, HasNEON: true, ForceGeneric: true}

	for logN := 0; logN <= codelet.MaxLog; logN++ {
		d, err := SelectWidth(32, logN, forced, fhtypes.StrategyAuto)
		if err != nil {
			t.Fatal(err)
		}
		if d.Kind != KindCodelet || d.LogN != logN {
			t.Errorf("log_n %d: decision %+v, want codelet", logN, d)
		}
	}

	d, err := SelectWidth(64, codelet.MaxLog+1, forced, fhtypes.StrategyAuto)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != KindScalar || d.Stage != "generic" {
		t.Errorf("ForceGeneric above codelets: decision %+v, want scalar generic", d)
	}
}

func TestSelectWidthPrefersVectorStage(t *testing.T) {
	t.Parallel()

	features := cpu.DetectFeatures()
	best := butterfly.Best[float32](features)
	if !best.Vector() {
		t.Skipf("no vector stage on %s", features.Architecture)
	}

	d, err := SelectWidth(32, 12, features, fhtypes.StrategyAuto)
	if err != nil {
		t.Fatal(err)
	}

	if d.Kind != KindVector || d.Stage != best.Name || d.Lanes != best.Lanes {
		t.Errorf("decision %+v, want vector stage %q with %d lanes", d, best.Name, best.Lanes)
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	t.Parallel()

	features := cpu.DetectFeatures()
	first, err := SelectWidth(64, 16, features, fhtypes.StrategyAuto)
	if err != nil {
		t.Fatal(err)
	}

	for range 10 {
		d, _ := SelectWidth(64, 16, features, fhtypes.StrategyAuto)
		if d != first {
			t.Fatalf("decision changed: %+v then %+v", first, d)
		}
	}
}

func TestDispatchEquivalence(t *testing.T) {
	t.Parallel()

	features := cpu.DetectFeatures()
	strategies := []fhtypes.Strategy{
		fhtypes.StrategyAuto,
		fhtypes.StrategyCodelet,
		fhtypes.StrategyVector,
		fhtypes.StrategyScalar,
	}

	for logN := 0; logN <= codelet.MaxLog+3; logN++ {
		n := 1 << logN
		input := testutil.DeterministicNoise[float32](int64(n), 3, n)
		want := testutil.Clone(input)
		generic.Transform(want, logN)

		for _, strategy := range strategies {
			t.Run(fmt.Sprintf("%s/n=%d", strategy, n), func(t *testing.T) {
				kernel, d, err := Select[float32](logN, features, strategy)
				if errors.Is(err, ErrNotImplemented) {
					t.Skipf("%s has no kernel for n=%d", strategy, n)
				}
				if err != nil {
					t.Fatal(err)
				}

				buf := testutil.Clone(input)
				kernel(buf)
				if d.LogN != logN {
					t.Errorf("decision log_n = %d, want %d", d.LogN, logN)
				}
				testutil.RequireBitIdentical(t, buf, want)
			})
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		KindCodelet: "codelet",
		KindVector:  "vector",
		KindScalar:  "scalar",
		Kind(42):    "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
