package algofht

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
)

// These tests share the default wisdom cache and do not run in parallel.

func resetWisdom(t *testing.T) {
	t.Helper()

	ClearWisdom()
	t.Cleanup(ClearWisdom)
}

func TestRecordBenchmarkDecisionSteersAutoPlans(t *testing.T) {
	resetWisdom(t)

	const n = 1 << 12

	if err := RecordBenchmarkDecision[float32](n, StrategyScalar); err != nil {
		t.Fatalf("RecordBenchmarkDecision failed: %v", err)
	}
	if WisdomLen() != 1 {
		t.Fatalf("WisdomLen() = %d, want 1", WisdomLen())
	}

	plan, err := NewPlan[float32](n)
	if err != nil {
		t.Fatal(err)
	}
	if info := plan.Info(); info.Kind != KernelScalar {
		t.Errorf("auto plan with scalar wisdom resolved to %+v", info)
	}

	// other precision is unaffected
	want, err := fht.SelectWidth(64, 12, cpu.DetectFeatures(), StrategyAuto)
	if err != nil {
		t.Fatal(err)
	}
	plan64, err := NewPlan[float64](n)
	if err != nil {
		t.Fatal(err)
	}
	if got := plan64.Info().Kind; got != want.Kind {
		t.Errorf("float64 plan kind = %v, want %v", got, want.Kind)
	}

	// explicit strategies win over wisdom
	forced, err := NewPlanWithOptions[float32](64, PlanOptions{Strategy: StrategyCodelet})
	if err != nil {
		t.Fatal(err)
	}
	if forced.Info().Kind != KernelCodelet {
		t.Errorf("forced codelet plan resolved to %+v", forced.Info())
	}
}

func TestRecordBenchmarkDecisionInvalidLength(t *testing.T) {
	resetWisdom(t)

	if err := RecordBenchmarkDecision[float64](100, StrategyScalar); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("RecordBenchmarkDecision(100) error = %v, want ErrInvalidLength", err)
	}
	if WisdomLen() != 0 {
		t.Errorf("WisdomLen() = %d after failed record", WisdomLen())
	}
}

func TestStaleWisdomFallsBackToAuto(t *testing.T) {
	resetWisdom(t)

	const n = 1 << 10

	// no codelet exists for n=1024
	if err := RecordBenchmarkDecision[float64](n, StrategyCodelet); err != nil {
		t.Fatal(err)
	}

	plan, err := NewPlan[float64](n)
	if err != nil {
		t.Fatalf("NewPlan with stale wisdom failed: %v", err)
	}
	if plan.Info().Kind == KernelCodelet {
		t.Errorf("stale wisdom produced a codelet plan: %+v", plan.Info())
	}

	buf := make([]float64, n)
	buf[0] = 1
	if err := Transform(buf); err != nil {
		t.Fatalf("Transform with stale wisdom failed: %v", err)
	}
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("buf[%d] = %v, want 1", i, v)
		}
	}
}

func TestWisdomFileRoundTrip(t *testing.T) {
	resetWisdom(t)

	if err := RecordBenchmarkDecision[float32](1<<14, StrategyVector); err != nil {
		t.Fatal(err)
	}
	if err := RecordBenchmarkDecision[float64](1<<9, StrategyScalar); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "fht.wisdom")
	if err := ExportWisdom(path); err != nil {
		t.Fatalf("ExportWisdom failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "#") {
		t.Errorf("wisdom file does not start with a header:\n%s", data)
	}

	ClearWisdom()
	if WisdomLen() != 0 {
		t.Fatalf("WisdomLen() = %d after ClearWisdom", WisdomLen())
	}

	if err := ImportWisdom(path); err != nil {
		t.Fatalf("ImportWisdom failed: %v", err)
	}
	if WisdomLen() != 2 {
		t.Errorf("WisdomLen() = %d after import, want 2", WisdomLen())
	}
}

func TestExportWisdomToCustomCache(t *testing.T) {
	wisdom := NewWisdom()

	path := filepath.Join(t.TempDir(), "empty.wisdom")
	if err := ExportWisdomTo(path, wisdom); err != nil {
		t.Fatalf("ExportWisdomTo failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("wisdom file not written: %v", err)
	}
}

func TestImportWisdomErrors(t *testing.T) {
	resetWisdom(t)

	if err := ImportWisdom(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("ImportWisdom of a missing file succeeded")
	}

	if err := ImportWisdomFromString("32 10 avx fastest\n"); !errors.Is(err, ErrInvalidWisdom) {
		t.Errorf("ImportWisdomFromString(bad strategy) error = %v, want ErrInvalidWisdom", err)
	}
	if WisdomLen() != 0 {
		t.Errorf("failed import left %d entries", WisdomLen())
	}

	if err := ImportWisdomFromString("# comment\n\n64 12 none scalar\n"); err != nil {
		t.Errorf("ImportWisdomFromString failed: %v", err)
	}
	if WisdomLen() != 1 {
		t.Errorf("WisdomLen() = %d, want 1", WisdomLen())
	}
}
