package fht

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// ErrInvalidWisdom is returned when wisdom data cannot be parsed.
var ErrInvalidWisdom = errors.New("fht: invalid wisdom")

// WisdomKey identifies one measured configuration.
type WisdomKey struct {
	Bits  int
	LogN  int
	Level cpu.SIMDLevel
}

// Wisdom caches the fastest measured strategy per configuration.
// Safe for concurrent use.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]fhtypes.Strategy
}

// DefaultWisdom is consulted by StrategyAuto plans and transforms.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]fhtypes.Strategy)}
}

// Store records strategy for key, replacing any earlier entry.
func (w *Wisdom) Store(key WisdomKey, strategy fhtypes.Strategy) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[key] = strategy
}

// Lookup returns the recorded strategy for key.
func (w *Wisdom) Lookup(key WisdomKey) (fhtypes.Strategy, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	strategy, ok := w.entries[key]
	return strategy, ok
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[WisdomKey]fhtypes.Strategy)
}

// Export writes one line per entry, "bits log_n level strategy", sorted by
// key so the output is stable.
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	keys := make([]WisdomKey, 0, len(w.entries))
	for key := range w.entries {
		keys = append(keys, key)
	}
	entries := make(map[WisdomKey]fhtypes.Strategy, len(w.entries))
	for key, strategy := range w.entries {
		entries[key] = strategy
	}
	w.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.Bits != b.Bits {
			return a.Bits < b.Bits
		}
		return a.LogN < b.LogN
	})

	bw := bufio.NewWriter(out)
	fmt.Fprintln(bw, "# bits log_n level strategy")
	for _, key := range keys {
		fmt.Fprintf(bw, "%d %d %s %s\n", key.Bits, key.LogN, key.Level, entries[key])
	}

	return bw.Flush()
}

// Import merges entries read from in. Blank lines and lines starting with
// '#' are ignored. Nothing is stored if any line is malformed.
func (w *Wisdom) Import(in io.Reader) error {
	parsed := make(map[WisdomKey]fhtypes.Strategy)

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, strategy, err := parseWisdomLine(text)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidWisdom, line, err)
		}
		parsed[key] = strategy
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading wisdom: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for key, strategy := range parsed {
		w.entries[key] = strategy
	}

	return nil
}

func parseWisdomLine(text string) (WisdomKey, fhtypes.Strategy, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return WisdomKey{}, 0, fmt.Errorf("want 4 fields, got %d", len(fields))
	}

	bits, err := strconv.Atoi(fields[0])
	if err != nil || (bits != 32 && bits != 64) {
		return WisdomKey{}, 0, fmt.Errorf("bad width %q", fields[0])
	}

	logN, err := strconv.Atoi(fields[1])
	if err != nil || ValidateLogN(logN) != nil {
		return WisdomKey{}, 0, fmt.Errorf("bad log_n %q", fields[1])
	}

	level, ok := cpu.ParseSIMDLevel(fields[2])
	if !ok {
		return WisdomKey{}, 0, fmt.Errorf("unknown SIMD level %q", fields[2])
	}

	strategy, ok := fhtypes.ParseStrategy(fields[3])
	if !ok {
		return WisdomKey{}, 0, fmt.Errorf("unknown strategy %q", fields[3])
	}

	return WisdomKey{Bits: bits, LogN: logN, Level: level}, strategy, nil
}

// Resolve replaces StrategyAuto with the strategy recorded in wisdom for the
// configuration, if any. Explicit strategies are returned unchanged.
func Resolve(wisdom *Wisdom, bits, logN int, features cpu.Features, strategy fhtypes.Strategy) fhtypes.Strategy {
	if strategy != fhtypes.StrategyAuto || wisdom == nil {
		return strategy
	}

	if recorded, ok := wisdom.Lookup(WisdomKey{Bits: bits, LogN: logN, Level: features.Level()}); ok {
		return recorded
	}

	return strategy
}
