package fhtypes

// Strategy controls which arm of the dispatcher a transform uses.
type Strategy uint8

const (
	// StrategyAuto picks a codelet when one exists for the size, otherwise the
	// generic driver with the widest vector stage available.
	StrategyAuto Strategy = iota
	// StrategyCodelet requires a small-size codelet for the size.
	StrategyCodelet
	// StrategyVector uses the generic driver with the widest vector stage,
	// even for sizes that have a codelet.
	StrategyVector
	// StrategyScalar uses the generic driver with the scalar stage only.
	StrategyScalar
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyCodelet:
		return "codelet"
	case StrategyVector:
		return "vector"
	case StrategyScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, bool) {
	for s := StrategyAuto; s <= StrategyScalar; s++ {
		if s.String() == name {
			return s, true
		}
	}

	return StrategyAuto, false
}
