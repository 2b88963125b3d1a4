package interp

import (
	"testing"

	"github.com/chrisns/gcodepulse/internal/gcode"
	"github.com/chrisns/gcodepulse/internal/machine"
)

func TestDispatchLabelNoMotion(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	_, block, _ := gcode.ParseLine(0, "O100")

	var warned string
	next, moved := Dispatch(cur, block, cfg, func(Command) {
		t.Fatal("label should not emit any command")
	}, func(msg string) { warned = msg })

	if moved {
		t.Error("label should not dispatch motion")
	}
	if next != cur {
		t.Errorf("label should not mutate toolstate: got %+v", next)
	}
	if warned == "" {
		t.Error("expected a warning for label block")
	}
}

func TestDispatchUnsupported(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	_, block, _ := gcode.ParseLine(0, "M104 S200")

	var warned string
	_, moved := Dispatch(cur, block, cfg, func(Command) {
		t.Fatal("unsupported block should not emit any command")
	}, func(msg string) { warned = msg })

	if moved {
		t.Error("unsupported command should not dispatch motion")
	}
	if warned == "" {
		t.Error("expected a warning for unsupported block")
	}
}

func TestDispatchLinearMutatesState(t *testing.T) {
	cfg := machine.DefaultToolConfig()
	cur := machine.NewToolState()
	_, block, _ := gcode.ParseLine(0, "G1 X1.00 Y0 Z0 E0")

	next, moved := Dispatch(cur, block, cfg, func(Command) {}, nil)
	if !moved {
		t.Fatal("expected motion to be dispatched")
	}
	if next.X != 1.00 {
		t.Errorf("next.X = %v, want 1.00", next.X)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		word string
		want MoveKind
	}{
		{"G0", KindLinear},
		{"G1", KindLinear},
		{"G2", KindArcCW},
		{"G3", KindArcCCW},
		{"O1", KindLabel},
		{"M104", KindUnsupported},
	}
	for _, c := range cases {
		_, block, _ := gcode.ParseLine(0, c.word)
		principal, _ := block.Principal()
		if got := Classify(principal); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}
