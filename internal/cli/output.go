package cli

import (
	"fmt"
	"os"

	"github.com/chrisns/gcodepulse/internal/machine"
	"github.com/chrisns/gcodepulse/internal/pipeline"
)

// UsageError marks an invalid command invocation, distinct from an I/O
// or parse failure during a run.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// PrintWarning prints a warning message to stderr.
// Format: "WARNING: <message>"
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "WARNING: %s\n", message)
}

// PrintSummary prints run statistics and the final tool state to stdout.
func PrintSummary(stats pipeline.RunStats, final machine.ToolState) {
	fmt.Println("\n=== Run Complete ===")
	fmt.Println()

	fmt.Printf("Blocks dispatched: %s\n", FormatCount(stats.BlocksDispatched))
	fmt.Printf("Blocks skipped:    %s\n", FormatCount(stats.BlocksSkipped))
	fmt.Println()

	fmt.Printf("Pulses X: %s\n", FormatCount(stats.Pulses[machine.AxisX]))
	fmt.Printf("Pulses Y: %s\n", FormatCount(stats.Pulses[machine.AxisY]))
	fmt.Printf("Pulses Z: %s\n", FormatCount(stats.Pulses[machine.AxisZ]))
	fmt.Printf("Pulses E: %s\n", FormatCount(stats.Pulses[machine.AxisE]))
	fmt.Println()

	fmt.Printf("Final position: X=%.4f Y=%.4f Z=%.4f E=%.4f F=%.1f\n",
		final.X, final.Y, final.Z, final.E, final.Feedrate)
	fmt.Printf("Run duration:    %s\n", FormatElapsed(stats.Duration))
	fmt.Println()
}

// PrintError prints an error message to stderr and returns the process
// exit code appropriate for it. A *UsageError is followed by the usage line.
//
//	0 - no error
//	1 - general error (reading the input file, a run aborted by cancellation)
//	2 - invalid arguments
func PrintError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	switch err.(type) {
	case *UsageError:
		fmt.Fprintln(os.Stderr, "Usage: gcodepulse [FLAGS] <input-file>")
		return 2
	default:
		return 1
	}
}
