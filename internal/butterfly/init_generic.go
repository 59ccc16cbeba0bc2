//go:build purego || (!amd64 && !arm64)

package butterfly

import (
	// Scalar stage only
	_ "github.com/cwbudde/algo-fht/internal/butterfly/arch/generic"
)
