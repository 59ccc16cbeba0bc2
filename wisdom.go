package algofht

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Wisdom is a type alias for the internal wisdom cache: the fastest
// measured strategy per (precision, size, SIMD level).
type Wisdom = fht.Wisdom

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return fht.NewWisdom()
}

// RecordBenchmarkDecision stores strategy as the fastest for length-n
// transforms of T on the current CPU. Plans created afterwards with
// StrategyAuto use it.
func RecordBenchmarkDecision[T Float](n int, strategy Strategy) error {
	logN, err := fht.LogNForLength(n)
	if err != nil {
		return err
	}

	key := fht.WisdomKey{
		Bits:  fhtypes.WidthOf[T](),
		LogN:  logN,
		Level: cpu.DetectFeatures().Level(),
	}
	fht.DefaultWisdom.Store(key, strategy)

	return nil
}

// ImportWisdom loads wisdom data from a file.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := fht.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom data from a string.
// This is useful for embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	if err := fht.DefaultWisdom.Import(strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ExportWisdom saves the default wisdom cache to a file.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, fht.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close wisdom file: %w", cerr)
		}
	}()

	if err := wisdom.Export(file); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from the default wisdom cache.
func ClearWisdom() {
	fht.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the default wisdom cache.
func WisdomLen() int {
	return fht.DefaultWisdom.Len()
}
