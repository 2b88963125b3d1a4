package pipeline

import "time"

// RunStats aggregates observational counters for one driver run. It never
// influences interpolation; it exists purely to be reported.
type RunStats struct {
	BlocksDispatched int64
	BlocksSkipped    int64
	Pulses           [4]int64 // indexed by machine.AxisX..AxisE
	Duration         time.Duration
}
