package main

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	algofht "github.com/cwbudde/algo-fht"
)

func TestParseSizes(t *testing.T) {
	got := parseSizes(" 16, 100,0,-8,,1024 ,x")
	want := []int{16, 1024}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseSizes = %v, want %v", got, want)
	}
}

func TestParsePrecision(t *testing.T) {
	tests := map[string][]int{
		"float32": {32},
		"float64": {64},
		"all":     {32, 64},
	}

	for name, want := range tests {
		got, err := parsePrecision(name)
		if err != nil || !reflect.DeepEqual(got, want) {
			t.Errorf("parsePrecision(%q) = %v, %v; want %v", name, got, err, want)
		}
	}

	if _, err := parsePrecision("complex64"); err == nil {
		t.Error("parsePrecision(complex64) succeeded")
	}
}

func TestStrategyConst(t *testing.T) {
	tests := map[algofht.Strategy]string{
		algofht.StrategyCodelet: "StrategyCodelet",
		algofht.StrategyVector:  "StrategyVector",
		algofht.StrategyScalar:  "StrategyScalar",
	}

	for strategy, want := range tests {
		if got := strategyConst(strategy); got != want {
			t.Errorf("strategyConst(%v) = %q, want %q", strategy, got, want)
		}
	}
}

func TestBenchmarkSizeAndExport(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	results := benchmarkSize[float32](rnd, 64, 2, 1)
	if len(results) < 2 {
		t.Fatalf("benchmarkSize returned %d results, want codelet and scalar at least", len(results))
	}
	for _, res := range results {
		if res.bits != 32 || res.size != 64 || res.stage == "" {
			t.Errorf("unexpected result %+v", res)
		}
	}

	path := filepath.Join(t.TempDir(), "bench.wisdom")
	if err := exportWisdom(path, results[:1]); err != nil {
		t.Fatalf("exportWisdom failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "32 6 ") {
		t.Errorf("wisdom file missing entry:\n%s", data)
	}
}

func TestResetIntervalKeepsBuffersFinite(t *testing.T) {
	for _, width := range []int{32, 64} {
		for logN := 1; logN <= algofht.MaxLogN; logN++ {
			k := resetInterval(width, logN)
			if k < 1 {
				t.Fatalf("resetInterval(%d, %d) = %d", width, logN, k)
			}

			maxExp := 127
			if width == 64 {
				maxExp = 1023
			}
			if k*logN > maxExp {
				t.Errorf("resetInterval(%d, %d) = %d allows magnitudes up to 2^%d", width, logN, k, k*logN)
			}
		}
	}

	if resetInterval(32, 0) != math.MaxInt {
		t.Error("size-one transforms should never need a reset")
	}

	// ones are the worst case for the first transform
	const logN = 16
	plan, err := algofht.NewPlan[float32](1 << logN)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 1<<logN)
	for i := range buf {
		buf[i] = 1
	}
	for range resetInterval(32, logN) {
		plan.InPlace(buf)
	}
	for i, v := range buf {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			t.Fatalf("buf[%d] = %v after %d transforms", i, v, resetInterval(32, logN))
		}
	}
}
