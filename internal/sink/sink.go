// Package sink implements visualization sinks for the motion pipeline: the
// external consumer of the aggregator's stream of SyncEntry snapshots.
// Sinks are not handed the ToolConfig, so they see raw per-axis step counts
// and cannot convert them to real-world positions.
package sink

import (
	"context"

	"github.com/chrisns/gcodepulse/internal/machine"
)

// Sink consumes the aggregator's best-effort SyncEntry snapshots until ui
// closes or ctx is cancelled.
type Sink interface {
	Run(ctx context.Context, ui <-chan machine.SyncEntry)
}
