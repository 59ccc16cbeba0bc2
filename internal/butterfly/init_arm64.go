//go:build arm64 && !purego

package butterfly

import (
	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"

	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/arm64/neon"
)
