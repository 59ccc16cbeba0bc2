package cpu

import (
	"sync"
	"time"
)

// ReadCycleCounter reads the CPU's cycle counter (TSC on amd64, CNTVCT on
// arm64). Without a hardware counter it returns monotonic nanoseconds.
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// HasHardwareCounter reports whether ReadCycleCounter reads a hardware counter
// rather than the wall clock.
func HasHardwareCounter() bool {
	return hasHardwareCounter
}

// CyclesSince returns the counter ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CounterFrequency returns the tick rate of ReadCycleCounter in Hz.
//
// arm64 reports CNTFRQ_EL0. On amd64 the TSC rate is measured against the
// wall clock on first call, which takes about 10ms. The fallback counter
// ticks in nanoseconds.
func CounterFrequency() float64 {
	frequencyOnce.Do(func() {
		frequencyHz = measureFrequency()
	})

	return frequencyHz
}

// CyclesToNanoseconds converts counter ticks to approximate nanoseconds.
// Only meant for reporting.
func CyclesToNanoseconds(cycles int64) float64 {
	hz := CounterFrequency()
	if hz <= 0 {
		return float64(cycles)
	}

	return float64(cycles) * 1e9 / hz
}

var (
	frequencyOnce sync.Once
	frequencyHz   float64
)

const calibrationWindow = 10 * time.Millisecond

func measureFrequency() float64 {
	if !hasHardwareCounter {
		return 1e9
	}

	if hz := getCounterFrequencyHz(); hz > 0 {
		return float64(hz)
	}

	start := time.Now()
	startCycles := ReadCycleCounter()

	for time.Since(start) < calibrationWindow {
	}

	cycles := CyclesSince(startCycles)
	elapsed := time.Since(start)

	if cycles <= 0 || elapsed <= 0 {
		return 0
	}

	return float64(cycles) / elapsed.Seconds()
}
