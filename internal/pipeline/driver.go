package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chrisns/gcodepulse/internal/gcode"
	"github.com/chrisns/gcodepulse/internal/interp"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// commandBufferSize is the capacity of the command channel between the
// driver/interpolator and the aggregator. It is a throughput knob only; the
// channel remains lossless and FIFO regardless of size.
const commandBufferSize = 256

// Driver walks a program's blocks in program-counter order, dispatching
// each to the interpolator and waiting on the aggregator's sync barrier
// before advancing.
type Driver struct {
	// RunID tags this run for external telemetry correlation.
	RunID string
}

// NewDriver returns a Driver tagged with a fresh run identifier.
func NewDriver() *Driver {
	return &Driver{RunID: uuid.NewString()}
}

// Run executes program to completion (or until ctx is cancelled), returning
// the final toolstate and run statistics. ui receives the aggregator's
// best-effort snapshots and is closed when the run ends; the caller is
// expected to have a sink already reading from it.
func (d *Driver) Run(ctx context.Context, program *gcode.Program, cfg machine.ToolConfig, ui chan<- machine.SyncEntry, warn func(string)) (machine.ToolState, RunStats, error) {
	cmds := make(chan interp.Command, commandBufferSize)
	barrier := make(chan machine.SyncEntry)

	agg := NewAggregator()
	go agg.Run(ctx, cmds, barrier, ui)

	state := machine.NewToolState()
	var stats RunStats
	start := time.Now()

	pc := 0
	for {
		block, ok := program.Get(pc)
		if !ok {
			break
		}

		_, moved := interp.Dispatch(state, block, cfg, func(c interp.Command) {
			cmds <- c
			if c.Kind <= interp.CmdStepperE {
				stats.Pulses[c.Kind]++
			}
		}, warn)

		stats.BlocksDispatched++

		if moved {
			select {
			case sync, ok := <-barrier:
				if !ok {
					// Aggregator exited without a reply (spec.md §7: "Missing
					// barrier reply | driver | Logged; pc still advances").
					if warn != nil {
						warn(fmt.Sprintf("no barrier reply for block at line %d, continuing", pc))
					}
				} else {
					state = machine.Apply(state, sync, cfg)
				}
			case <-ctx.Done():
				stats.Duration = time.Since(start)
				return state, stats, ctx.Err()
			}
		} else {
			stats.BlocksSkipped++
		}

		pc++
	}

	cmds <- interp.QuitCommand()
	stats.Duration = time.Since(start)
	return state, stats, nil
}
