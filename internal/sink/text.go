package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chrisns/gcodepulse/internal/machine"
)

// textUpdateInterval mirrors the teacher's progress reporter cadence: a
// display refresh at most every 2 seconds, regardless of how fast snapshots
// arrive.
const textUpdateInterval = 2 * time.Second

// TextSink renders a line-overwrite progress display of accumulated pulses
// per axis and elapsed time, adapted from the teacher's progress reporter.
type TextSink struct {
	w          io.Writer
	startTime  time.Time
	lastUpdate time.Time
	pulses     [4]int64
	displayed  bool
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	now := time.Now()
	return &TextSink{w: w, startTime: now, lastUpdate: now}
}

// Run implements Sink.
func (s *TextSink) Run(ctx context.Context, ui <-chan machine.SyncEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, open := <-ui:
			if !open {
				return
			}
			s.pulses[machine.AxisX] += abs64(entry.StepsX)
			s.pulses[machine.AxisY] += abs64(entry.StepsY)
			s.pulses[machine.AxisZ] += abs64(entry.StepsZ)
			s.pulses[machine.AxisE] += abs64(entry.StepsE)

			now := time.Now()
			if now.Sub(s.lastUpdate) >= textUpdateInterval {
				s.display(now)
				s.lastUpdate = now
			}
		}
	}
}

func (s *TextSink) display(now time.Time) {
	elapsed := now.Sub(s.startTime)
	fmt.Fprintf(s.w, "\rpulses x=%d y=%d z=%d e=%d  elapsed=%s    ",
		s.pulses[machine.AxisX], s.pulses[machine.AxisY], s.pulses[machine.AxisZ], s.pulses[machine.AxisE],
		elapsed.Round(time.Second))
	s.displayed = true
}

// Finish clears the progress line, if one was ever displayed.
func (s *TextSink) Finish() {
	if s.displayed {
		fmt.Fprint(s.w, "\r"+strings.Repeat(" ", 80)+"\r")
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
