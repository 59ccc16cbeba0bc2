//go:build amd64 && !purego

package butterfly

// Blank imports run the arch packages' init functions, which register their
// stages with the global registry.

import (
	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"

	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/amd64/avx"
	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/amd64/sse2"
)
