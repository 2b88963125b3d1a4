package interp

import (
	"testing"

	"github.com/chrisns/gcodepulse/internal/machine"
)

func collect(emit func(func(Command))) []Command {
	var cmds []Command
	emit(func(c Command) { cmds = append(cmds, c) })
	return cmds
}

func pulseSum(cmds []Command, axis CommandKind) int64 {
	var sum int64
	for _, c := range cmds {
		if c.Kind == axis {
			sum += int64(c.Value)
		}
	}
	return sum
}

func TestLinearEndpointScenario1(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X = 1.00

	cmds := collect(func(emit func(Command)) { Linear(cur, next, cfg, emit) })

	if got := pulseSum(cmds, CmdStepperX); got != 100 {
		t.Errorf("X pulses = %d, want 100", got)
	}
	if got := pulseSum(cmds, CmdStepperY); got != 0 {
		t.Errorf("Y pulses = %d, want 0", got)
	}
	if cmds[len(cmds)-1].Kind != CmdDone {
		t.Errorf("last command = %v, want Done", cmds[len(cmds)-1].Kind)
	}
}

func TestLinearEndpointScenario2(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X, next.Y = 0.50, 0.50

	cmds := collect(func(emit func(Command)) { Linear(cur, next, cfg, emit) })

	if got := pulseSum(cmds, CmdStepperX); got != 50 {
		t.Errorf("X pulses = %d, want 50", got)
	}
	if got := pulseSum(cmds, CmdStepperY); got != 50 {
		t.Errorf("Y pulses = %d, want 50", got)
	}
}

func TestLinearNegativeEndpointScenario4(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X, next.Y = -0.03, 0.03

	cmds := collect(func(emit func(Command)) { Linear(cur, next, cfg, emit) })

	if got := pulseSum(cmds, CmdStepperX); got != -3 {
		t.Errorf("X pulses = %d, want -3", got)
	}
	if got := pulseSum(cmds, CmdStepperY); got != 3 {
		t.Errorf("Y pulses = %d, want 3", got)
	}
}

func TestLinearEmitsFeedrateOnlyWhenChanged(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X = 0.10
	next.Feedrate = 2000

	cmds := collect(func(emit func(Command)) { Linear(cur, next, cfg, emit) })
	if cmds[0].Kind != CmdFeedrate || cmds[0].Value != 2000 {
		t.Errorf("first command = %+v, want Feedrate(2000)", cmds[0])
	}

	cur2 := next
	next2 := cur2
	next2.X += 0.10

	cmds2 := collect(func(emit func(Command)) { Linear(cur2, next2, cfg, emit) })
	for _, c := range cmds2 {
		if c.Kind == CmdFeedrate {
			t.Errorf("unexpected feedrate command when unchanged: %+v", c)
		}
	}
}

func TestLinearMonotonicityNonNegativeDelta(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	next := cur
	next.X, next.Y = 1.00, 0.37

	cmds := collect(func(emit func(Command)) { Linear(cur, next, cfg, emit) })
	for _, c := range cmds {
		if (c.Kind == CmdStepperX || c.Kind == CmdStepperY) && c.Value < 0 {
			t.Errorf("unexpected negative pulse for non-negative delta axis: %+v", c)
		}
	}
}
