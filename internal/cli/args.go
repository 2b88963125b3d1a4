package cli

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/chrisns/gcodepulse/internal/machine"
)

// Version information (set during build with -ldflags).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Args contains parsed command-line arguments.
type Args struct {
	InputFile      string
	DumpNormalized string
	Telemetry      bool
	Config         machine.ToolConfig
}

// ParseArgs parses command-line arguments.
// Expected format: [--steps-per-unit=...] [--dump-normalized=PATH] [--telemetry] <input-file>
func ParseArgs(args []string) (*Args, error) {
	fs := flag.NewFlagSet("gcodepulse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dumpNormalized := fs.String("dump-normalized", "", "write the parsed program back out in canonical form")
	telemetry := fs.Bool("telemetry", false, "publish run metrics to CloudWatch (requires SMC_ENV=production)")
	stepsPerUnit := fs.String("steps-per-unit", "", "override steps-per-unit, e.g. x=100,y=100,z=100,e=100")

	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Message: fmt.Sprintf("failed to parse flags: %v", err)}
	}

	positional := fs.Args()
	if len(positional) != 1 {
		return nil, &UsageError{Message: fmt.Sprintf("expected 1 argument (input file), got %d", len(positional))}
	}

	cfg := machine.DefaultToolConfig()
	if *stepsPerUnit != "" {
		if err := applyStepsPerUnit(&cfg, *stepsPerUnit); err != nil {
			return nil, &UsageError{Message: err.Error()}
		}
	}

	return &Args{
		InputFile:      positional[0],
		DumpNormalized: *dumpNormalized,
		Telemetry:      *telemetry,
		Config:         cfg,
	}, nil
}

func applyStepsPerUnit(cfg *machine.ToolConfig, spec string) error {
	for _, part := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("invalid steps-per-unit entry %q", part)
		}

		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid steps-per-unit value %q: %w", value, err)
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "x":
			cfg.StepsPerUnit[machine.AxisX] = int32(v)
		case "y":
			cfg.StepsPerUnit[machine.AxisY] = int32(v)
		case "z":
			cfg.StepsPerUnit[machine.AxisZ] = int32(v)
		case "e":
			cfg.StepsPerUnit[machine.AxisE] = int32(v)
		default:
			return fmt.Errorf("unknown axis %q in steps-per-unit", key)
		}
	}
	return nil
}

// ShouldShowHelp reports whether --help or -h is present.
func ShouldShowHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// ShouldShowVersion reports whether --version or -v is present.
func ShouldShowVersion(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}

// GetHelpText returns the help message text.
func GetHelpText() string {
	var sb strings.Builder

	sb.WriteString("gcodepulse - G-code to stepper pulse motion pipeline\n\n")
	sb.WriteString("Usage: gcodepulse [FLAGS] <input-file>\n\n")

	sb.WriteString("Positional Arguments:\n")
	sb.WriteString("  input-file               Path to a G-code file\n\n")

	sb.WriteString("Optional Flags:\n")
	sb.WriteString("  --steps-per-unit=<spec>  Override steps-per-unit, e.g. x=100,y=100,z=100,e=100\n")
	sb.WriteString("  --dump-normalized=<path> Write the parsed program back out in canonical form\n")
	sb.WriteString("  --telemetry              Publish run metrics to CloudWatch (requires SMC_ENV=production)\n")
	sb.WriteString("  --help, -h               Display this help message\n")
	sb.WriteString("  --version, -v            Display version information\n\n")

	sb.WriteString("Examples:\n")
	sb.WriteString("  gcodepulse program.gcode\n")
	sb.WriteString("  gcodepulse --steps-per-unit=x=200,y=200 program.gcode\n")
	sb.WriteString("  gcodepulse --dump-normalized=normalized.gcode program.gcode\n")

	return sb.String()
}

// GetVersionText returns the version information text.
func GetVersionText() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("gcodepulse version %s\n", Version))
	sb.WriteString(fmt.Sprintf("Built with Go %s\n", runtime.Version()))
	sb.WriteString(fmt.Sprintf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH))

	if GitCommit != "unknown" {
		sb.WriteString(fmt.Sprintf("Git commit: %s\n", GitCommit))
	}
	if BuildDate != "unknown" {
		sb.WriteString(fmt.Sprintf("Build date: %s\n", BuildDate))
	}

	return sb.String()
}
