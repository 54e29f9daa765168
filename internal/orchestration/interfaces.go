package orchestration

import (
	"io"

	"github.com/agbru/resumescan/internal/flow"
)

// Event is one progress notification emitted while a stage plays.
type Event struct {
	// Stage is the stage the event belongs to.
	Stage flow.Stage
	// Step is the highlighted analysis step, meaningful during Analysis only.
	Step int
	// Percent is the analysis progress from 0 to 100.
	Percent int
	// Message is the human-readable status line.
	Message string
}

// ProgressReporter displays events until the channel is closed.
//
// DisplayProgress runs on its own goroutine and must drain events to the
// end; the runner blocks on sends.
type ProgressReporter interface {
	DisplayProgress(events <-chan Event, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(events <-chan Event, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(events <-chan Event, out io.Writer) {
	f(events, out)
}

// NullProgressReporter drains the channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(events <-chan Event, _ io.Writer) {
	for range events {
	}
}
