package interp

import (
	"math"
	"testing"

	"github.com/chrisns/gcodepulse/internal/machine"
)

func TestArcHalfCircleScenario6(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X, next.Y = 0, 10

	cmds := collect(func(emit func(Command)) { Arc(cur, next, 0, 5, false, cfg, emit) })

	xPulses := pulseSum(cmds, CmdStepperX)
	r := 5.0
	rx := 100.0
	bound := int64(math.Ceil(math.Pi*r*rx)) + 1
	if xPulses < -bound || xPulses > bound {
		t.Errorf("|X pulses| = %d exceeds bound %d", xPulses, bound)
	}

	curX := fpApply(cur.X, cmds, CmdStepperX, 100)
	curY := fpApply(cur.Y, cmds, CmdStepperY, 100)
	if curX != 0 || curY != 1000 {
		t.Errorf("final cursor raw = (%d, %d), want (0, 1000)", curX, curY)
	}
	if cmds[len(cmds)-1].Kind != CmdDone {
		t.Errorf("last command = %v, want Done", cmds[len(cmds)-1].Kind)
	}
}

func fpApply(start float64, cmds []Command, axis CommandKind, res int64) int64 {
	raw := int64(start * float64(res))
	for _, c := range cmds {
		if c.Kind == axis {
			raw += int64(c.Value)
		}
	}
	return raw
}
