// Package machine holds the kinematic toolstate and per-axis configuration
// that flow between the driver, interpolator, and visualization sinks.
package machine

// Axis indices into ToolConfig.StepsPerUnit and SyncEntry's step counts.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisE
)

// ToolState is the real-valued kinematic state: position and feedrate.
// Mutated only by the driver in response to sync entries from the
// aggregator; read by the interpolator and the visualization sink.
type ToolState struct {
	X, Y, Z, E float64
	Feedrate   float64
}

// NewToolState returns the initial state: all axes zero, feedrate 1000.
func NewToolState() ToolState {
	return ToolState{Feedrate: 1000}
}

// ToolConfig is per-axis steps-per-unit, published once by the driver to
// all consumers at startup and never mutated thereafter.
type ToolConfig struct {
	StepsPerUnit [4]int32
}

// DefaultToolConfig returns 100 steps per unit on every axis.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{StepsPerUnit: [4]int32{100, 100, 100, 100}}
}

// SyncEntry is the accumulated step counts and feedrate since the last
// reset. Emitted by the aggregator at Done (to the driver) and periodically
// (to the visualization sink).
type SyncEntry struct {
	StepsX, StepsY, StepsZ, StepsE int64
	Rate                           float64
}

// Apply is the single authoritative point at which real coordinates
// advance: it updates position by steps/steps-per-unit on each axis and
// overwrites feedrate from sync's rate. The driver never writes position
// directly.
func Apply(current ToolState, sync SyncEntry, cfg ToolConfig) ToolState {
	return ToolState{
		X:        current.X + float64(sync.StepsX)/float64(cfg.StepsPerUnit[AxisX]),
		Y:        current.Y + float64(sync.StepsY)/float64(cfg.StepsPerUnit[AxisY]),
		Z:        current.Z + float64(sync.StepsZ)/float64(cfg.StepsPerUnit[AxisZ]),
		E:        current.E + float64(sync.StepsE)/float64(cfg.StepsPerUnit[AxisE]),
		Feedrate: sync.Rate,
	}
}
