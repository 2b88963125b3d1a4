package interp

import (
	"fmt"

	"github.com/chrisns/gcodepulse/internal/gcode"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// Dispatch routes one block to the appropriate handler. It returns the
// resulting toolstate and whether a motion primitive was dispatched (and
// therefore a Done/SyncEntry handshake is expected). Label and unsupported
// blocks are logged via warn and never dispatch motion.
func Dispatch(cur machine.ToolState, b gcode.Block, cfg machine.ToolConfig, emit func(Command), warn func(string)) (next machine.ToolState, moved bool) {
	principal, ok := b.Principal()
	if !ok {
		return cur, false
	}

	switch Classify(principal) {
	case KindLinear:
		next = BuildNext(cur, b, warn)
		Linear(cur, next, cfg, emit)
		return next, true
	case KindArcCW, KindArcCCW:
		next = BuildNext(cur, b, warn)
		i, j := ArcOffsets(b)
		Arc(cur, next, i, j, Classify(principal) == KindArcCW, cfg, emit)
		return next, true
	case KindLabel:
		if warn != nil {
			warn(fmt.Sprintf("O%d: section label", principal.Major))
		}
		return cur, false
	default:
		if warn != nil {
			warn(fmt.Sprintf("unsupported command %c%d", principal.Letter, principal.Major))
		}
		return cur, false
	}
}
