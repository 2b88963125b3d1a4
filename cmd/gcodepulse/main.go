package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisns/gcodepulse/internal/cli"
	"github.com/chrisns/gcodepulse/internal/gcode"
	"github.com/chrisns/gcodepulse/internal/machine"
	"github.com/chrisns/gcodepulse/internal/pipeline"
	"github.com/chrisns/gcodepulse/internal/sink"
)

// uiBufferSize is the capacity of the channel between the aggregator and
// the sink. The aggregator's coalesce-not-drop publish means a small
// buffer only smooths bursts; it never bounds correctness.
const uiBufferSize = 16

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if cli.ShouldShowHelp(args) {
		fmt.Print(cli.GetHelpText())
		return 0
	}
	if cli.ShouldShowVersion(args) {
		fmt.Print(cli.GetVersionText())
		return 0
	}

	parsedArgs, err := cli.ParseArgs(args)
	if err != nil {
		return cli.PrintError(err)
	}

	if f, ferr := os.Open(parsedArgs.InputFile); ferr == nil {
		if header, herr := gcode.ExtractHeaderInfo(f); herr == nil {
			printBanner(header)
		}
		f.Close()
	}

	program, err := gcode.Parse(parsedArgs.InputFile)
	if err != nil {
		return cli.PrintError(fmt.Errorf("failed to parse gcode file: %w", err))
	}

	if parsedArgs.DumpNormalized != "" {
		if err := dumpNormalized(program, parsedArgs.DumpNormalized); err != nil {
			return cli.PrintError(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	driver := pipeline.NewDriver()
	ui := make(chan machine.SyncEntry, uiBufferSize)

	activeSink := buildSink(ctx, parsedArgs, driver.RunID)

	sinkDone := make(chan struct{})
	go func() {
		activeSink.Run(ctx, ui)
		close(sinkDone)
	}()

	warn := func(msg string) { cli.PrintWarning("%s", msg) }

	final, stats, err := driver.Run(ctx, program, parsedArgs.Config, ui, warn)
	<-sinkDone

	if textSink, ok := activeSink.(*sink.TextSink); ok {
		textSink.Finish()
	}

	if err != nil {
		return cli.PrintError(fmt.Errorf("run aborted: %w", err))
	}

	cli.PrintSummary(stats, final)
	return 0
}

func buildSink(ctx context.Context, args *cli.Args, runID string) sink.Sink {
	if args.Telemetry {
		return sink.NewCloudWatchSink(ctx, runID)
	}
	return sink.NewTextSink(os.Stdout)
}

func dumpNormalized(program *gcode.Program, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create normalized output: %w", err)
	}
	defer out.Close()

	if err := gcode.Export(program, out); err != nil {
		return fmt.Errorf("failed to write normalized output: %w", err)
	}
	return nil
}

func printBanner(h *gcode.HeaderInfo) {
	if h.Machine == "" && h.ToolHead == "" && h.TotalLines == 0 {
		return
	}
	fmt.Println("=== Program Info ===")
	if h.Machine != "" {
		fmt.Printf("Machine:   %s\n", h.Machine)
	}
	if h.ToolHead != "" {
		fmt.Printf("Tool head: %s\n", h.ToolHead)
	}
	if h.TotalLines > 0 {
		fmt.Printf("Lines:     %d\n", h.TotalLines)
	}
	if h.IsRotate {
		fmt.Println("Rotary:    yes")
	}
	fmt.Println()
}
