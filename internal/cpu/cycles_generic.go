//go:build purego || (!amd64 && !arm64)

package cpu

import "time"

const hasHardwareCounter = false

var epoch = time.Now()

// readCycleCounter returns monotonic nanoseconds since package init.
func readCycleCounter() int64 {
	return int64(time.Since(epoch))
}

func getCounterFrequencyHz() int64 {
	return 0
}
