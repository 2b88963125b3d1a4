package interp

import (
	"fmt"

	"github.com/chrisns/gcodepulse/internal/gcode"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// BuildNext clones cur and applies the block's recognized parameter
// letters: X/Y/Z/E set absolute coordinates, F sets feedrate. I/J (arc
// center offsets) are consumed separately by ArcOffsets, since they never
// apply to ToolState directly. Anything else is logged and ignored.
func BuildNext(cur machine.ToolState, b gcode.Block, warn func(string)) machine.ToolState {
	next := cur
	tokens := b.Tokens
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	for _, t := range tokens {
		switch t.Letter {
		case 'X':
			next.X = t.Value()
		case 'Y':
			next.Y = t.Value()
		case 'Z':
			next.Z = t.Value()
		case 'E':
			next.E = t.Value()
		case 'F':
			next.Feedrate = t.Value()
		case 'I', 'J':
			// consumed by ArcOffsets
		default:
			if warn != nil {
				warn(fmt.Sprintf("unknown parameter %c in block", t.Letter))
			}
		}
	}
	return next
}

// ArcOffsets extracts the I/J relative arc center offsets from a block.
func ArcOffsets(b gcode.Block) (i, j float64) {
	tokens := b.Tokens
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	for _, t := range tokens {
		switch t.Letter {
		case 'I':
			i = t.Value()
		case 'J':
			j = t.Value()
		}
	}
	return i, j
}
