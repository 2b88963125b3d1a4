package interp

import "github.com/chrisns/gcodepulse/internal/gcode"

// MoveKind is the tagged variant a block's principal token dispatches to,
// keeping handlers closed-world and independently testable.
type MoveKind int

const (
	KindLinear MoveKind = iota
	KindArcCW
	KindArcCCW
	KindLabel
	KindUnsupported
)

func (k MoveKind) String() string {
	switch k {
	case KindLinear:
		return "Linear"
	case KindArcCW:
		return "ArcCW"
	case KindArcCCW:
		return "ArcCCW"
	case KindLabel:
		return "Label"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Classify inspects a block's principal token and returns the dispatch
// target: G0/G1 -> linear, G2 -> clockwise arc, G3 -> counterclockwise arc,
// O -> label (logged, no motion), anything else -> unsupported.
func Classify(principal gcode.Token) MoveKind {
	switch principal.Letter {
	case 'G':
		switch principal.Major {
		case 0, 1:
			return KindLinear
		case 2:
			return KindArcCW
		case 3:
			return KindArcCCW
		}
		return KindUnsupported
	case 'O':
		return KindLabel
	default:
		return KindUnsupported
	}
}
