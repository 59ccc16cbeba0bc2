//go:build amd64 && !purego

package cpu

const hasHardwareCounter = true

// readCycleCounter executes RDTSC.
//
//go:noescape
func readCycleCounter() int64

// The TSC rate is not architecturally visible; CounterFrequency measures it.
func getCounterFrequencyHz() int64 {
	return 0
}
