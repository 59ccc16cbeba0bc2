package fht

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

func TestWisdomStoreAndLookup(t *testing.T) {
	t.Parallel()

	w := NewWisdom()
	if w.Len() != 0 {
		t.Fatalf("new wisdom has %d entries, want 0", w.Len())
	}

	key := WisdomKey{Bits: 32, LogN: 16, Level: cpu.SIMDAVX}
	w.Store(key, fhtypes.StrategyVector)

	got, ok := w.Lookup(key)
	if !ok || got != fhtypes.StrategyVector {
		t.Fatalf("Lookup = %v, %v; want vector, true", got, ok)
	}

	if _, ok := w.Lookup(WisdomKey{Bits: 64, LogN: 16, Level: cpu.SIMDAVX}); ok {
		t.Error("Lookup found an entry for a different width")
	}

	w.Clear()
	if w.Len() != 0 {
		t.Errorf("after Clear, %d entries remain", w.Len())
	}
}

func TestWisdomExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	src := NewWisdom()
	src.Store(WisdomKey{Bits: 64, LogN: 20, Level: cpu.SIMDSSE2}, fhtypes.StrategyScalar)
	src.Store(WisdomKey{Bits: 32, LogN: 3, Level: cpu.SIMDNEON}, fhtypes.StrategyCodelet)
	src.Store(WisdomKey{Bits: 32, LogN: 12, Level: cpu.SIMDAVX}, fhtypes.StrategyVector)

	var buf bytes.Buffer
	if err := src.Export(&buf); err != nil {
		t.Fatal(err)
	}

	want := "# bits log_n level strategy\n" +
		"64 20 sse2 scalar\n" +
		"32 12 avx vector\n" +
		"32 3 neon codelet\n"
	if buf.String() != want {
		t.Errorf("Export output:\n%s\nwant:\n%s", buf.String(), want)
	}

	dst := NewWisdom()
	if err := dst.Import(strings.NewReader(buf.String())); err != nil {
		t.Fatal(err)
	}

	if dst.Len() != 3 {
		t.Fatalf("imported %d entries, want 3", dst.Len())
	}

	got, ok := dst.Lookup(WisdomKey{Bits: 32, LogN: 12, Level: cpu.SIMDAVX})
	if !ok || got != fhtypes.StrategyVector {
		t.Errorf("imported entry = %v, %v; want vector, true", got, ok)
	}
}

func TestWisdomImportRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, data := range []string{
		"32 10 avx",
		"16 10 avx vector",
		"32 31 avx vector",
		"32 10 altivec vector",
		"32 10 avx fastest",
		"x 10 avx vector",
	} {
		w := NewWisdom()
		err := w.Import(strings.NewReader("32 4 none codelet\n" + data + "\n"))
		if !errors.Is(err, ErrInvalidWisdom) {
			t.Errorf("Import(%q) error = %v, want ErrInvalidWisdom", data, err)
		}
		if w.Len() != 0 {
			t.Errorf("Import(%q) stored %d entries despite the error", data, w.Len())
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	features := cpu.Features{HasSSE2: true}
	w := NewWisdom()
	w.Store(WisdomKey{Bits: 32, LogN: 14, Level: cpu.SIMDSSE2}, fhtypes.StrategyScalar)

	if got := Resolve(w, 32, 14, features, fhtypes.StrategyAuto); got != fhtypes.StrategyScalar {
		t.Errorf("Resolve(auto) = %v, want scalar from wisdom", got)
	}
	if got := Resolve(w, 32, 14, features, fhtypes.StrategyVector); got != fhtypes.StrategyVector {
		t.Errorf("Resolve(vector) = %v, want explicit strategy kept", got)
	}
	if got := Resolve(w, 32, 15, features, fhtypes.StrategyAuto); got != fhtypes.StrategyAuto {
		t.Errorf("Resolve without entry = %v, want auto", got)
	}
	if got := Resolve(nil, 32, 14, features, fhtypes.StrategyAuto); got != fhtypes.StrategyAuto {
		t.Errorf("Resolve(nil wisdom) = %v, want auto", got)
	}
}
