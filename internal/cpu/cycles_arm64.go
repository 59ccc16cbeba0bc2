//go:build arm64 && !purego

package cpu

const hasHardwareCounter = true

// readCycleCounter reads CNTVCT_EL0.
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz reads CNTFRQ_EL0.
//
//go:noescape
func getCounterFrequencyHz() int64
