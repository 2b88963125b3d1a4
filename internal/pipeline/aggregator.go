// Package pipeline wires the interpolator's command stream through the
// pulse aggregator and driver loop described by the motion pipeline: driver
// dispatches blocks to the interpolator, which writes commands to a
// channel; the aggregator folds them into sync entries, releasing the
// driver's barrier and publishing best-effort snapshots to a visualization
// sink.
package pipeline

import (
	"context"

	"github.com/chrisns/gcodepulse/internal/interp"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// Aggregator consumes commands in arrival order, maintaining two
// independent sync accumulators: one released to the driver at each Done,
// one published to the visualization sink on a best-effort cadence.
type Aggregator struct{}

// NewAggregator returns a ready-to-run Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Run drains cmds until Quit, ctx cancellation, or the channel closing.
// The UI-publish cadence is every command processed: after each command the
// UI accumulator is offered to ui; if the sink isn't keeping up the send is
// skipped rather than blocking the core pipeline, and the accumulator keeps
// growing until the next successful send (coalescing, not dropping).
//
// Both ui and barrier are closed on every exit path, including one the
// driver didn't request (e.g. cmds closing early). A receive on a closed
// barrier never blocks, so the driver always observes a missing reply
// rather than hanging.
func (a *Aggregator) Run(ctx context.Context, cmds <-chan interp.Command, barrier chan<- machine.SyncEntry, ui chan<- machine.SyncEntry) {
	defer close(ui)
	defer close(barrier)

	var driverAcc, uiAcc machine.SyncEntry

	for {
		select {
		case <-ctx.Done():
			return
		case cmd, open := <-cmds:
			if !open {
				return
			}

			switch cmd.Kind {
			case interp.CmdStepperX:
				d := sign(cmd.Value)
				driverAcc.StepsX += d
				uiAcc.StepsX += d
			case interp.CmdStepperY:
				d := sign(cmd.Value)
				driverAcc.StepsY += d
				uiAcc.StepsY += d
			case interp.CmdStepperZ:
				d := sign(cmd.Value)
				driverAcc.StepsZ += d
				uiAcc.StepsZ += d
			case interp.CmdStepperE:
				d := sign(cmd.Value)
				driverAcc.StepsE += d
				uiAcc.StepsE += d
			case interp.CmdFeedrate:
				driverAcc.Rate = cmd.Value
				uiAcc.Rate = cmd.Value
			case interp.CmdDone:
				select {
				case barrier <- driverAcc:
				case <-ctx.Done():
					return
				}
				driverAcc.StepsX, driverAcc.StepsY, driverAcc.StepsZ, driverAcc.StepsE = 0, 0, 0, 0
			case interp.CmdQuit:
				return
			}

			select {
			case ui <- uiAcc:
				uiAcc.StepsX, uiAcc.StepsY, uiAcc.StepsZ, uiAcc.StepsE = 0, 0, 0, 0
			case <-ctx.Done():
				return
			default:
				// sink is behind; keep accumulating instead of blocking
			}
		}
	}
}

func sign(v float64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
