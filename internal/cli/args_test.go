package cli

import (
	"testing"

	"github.com/chrisns/gcodepulse/internal/machine"
)

func TestParseArgsRequiresExactlyOneFile(t *testing.T) {
	if _, err := ParseArgs([]string{}); err == nil {
		t.Error("expected error for zero arguments")
	} else if _, ok := err.(*UsageError); !ok {
		t.Errorf("expected *UsageError, got %T", err)
	}

	if _, err := ParseArgs([]string{"a.gcode", "b.gcode"}); err == nil {
		t.Error("expected error for two positional arguments")
	}
}

func TestParseArgsDefaults(t *testing.T) {
	args, err := ParseArgs([]string{"program.gcode"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.InputFile != "program.gcode" {
		t.Errorf("InputFile = %q, want program.gcode", args.InputFile)
	}
	if args.Telemetry {
		t.Error("Telemetry should default to false")
	}
	want := machine.DefaultToolConfig()
	if args.Config != want {
		t.Errorf("Config = %+v, want default %+v", args.Config, want)
	}
}

func TestParseArgsStepsPerUnitOverride(t *testing.T) {
	args, err := ParseArgs([]string{"--steps-per-unit=x=200,y=150", "program.gcode"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.Config.StepsPerUnit[machine.AxisX] != 200 {
		t.Errorf("StepsPerUnit[X] = %d, want 200", args.Config.StepsPerUnit[machine.AxisX])
	}
	if args.Config.StepsPerUnit[machine.AxisY] != 150 {
		t.Errorf("StepsPerUnit[Y] = %d, want 150", args.Config.StepsPerUnit[machine.AxisY])
	}
	if args.Config.StepsPerUnit[machine.AxisZ] != machine.DefaultToolConfig().StepsPerUnit[machine.AxisZ] {
		t.Error("Z should retain its default since it was not overridden")
	}
}

func TestParseArgsStepsPerUnitInvalid(t *testing.T) {
	if _, err := ParseArgs([]string{"--steps-per-unit=q=100", "program.gcode"}); err == nil {
		t.Error("expected error for unknown axis")
	}
	if _, err := ParseArgs([]string{"--steps-per-unit=x", "program.gcode"}); err == nil {
		t.Error("expected error for malformed entry")
	}
}

func TestParseArgsTelemetryFlag(t *testing.T) {
	args, err := ParseArgs([]string{"--telemetry", "program.gcode"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !args.Telemetry {
		t.Error("Telemetry should be true")
	}
}

func TestShouldShowHelp(t *testing.T) {
	if !ShouldShowHelp([]string{"--help"}) {
		t.Error("expected --help to be recognized")
	}
	if !ShouldShowHelp([]string{"-h"}) {
		t.Error("expected -h to be recognized")
	}
	if ShouldShowHelp([]string{"program.gcode"}) {
		t.Error("did not expect help to be recognized")
	}
}

func TestShouldShowVersion(t *testing.T) {
	if !ShouldShowVersion([]string{"--version"}) {
		t.Error("expected --version to be recognized")
	}
	if ShouldShowVersion([]string{"program.gcode"}) {
		t.Error("did not expect version to be recognized")
	}
}
