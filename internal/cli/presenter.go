package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/orchestration"
	"github.com/agbru/resumescan/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner whose suffix follows the current stage. Each finished stage is
// printed as a checked line.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// stageLabels are the checked lines printed once a stage is over.
var stageLabels = map[flow.Stage]string{
	flow.StageIntro:    "Resume Analyzer ready",
	flow.StageUpload:   "Resume uploaded",
	flow.StageLocation: "Location set",
	flow.StageAnalysis: "Analysis finished",
}

// DisplayProgress consumes events until the channel is closed.
func (CLIProgressReporter) DisplayProgress(events <-chan orchestration.Event, out io.Writer) {
	s := newSpinner(spinner.WithWriter(out))
	current, started := flow.StageIntro, false
	var last orchestration.Event

	for ev := range events {
		if !started || ev.Stage != current {
			if started {
				s.Stop()
				fmt.Fprintf(out, "%s✓%s %s\n", ui.ColorSuccess(), ui.ColorReset(), stageLabels[current])
			}
			current, started = ev.Stage, true
			last = orchestration.Event{}
			if ev.Stage.Terminal() {
				continue
			}
			s.Start()
		}
		if ev.Message == "" {
			ev.Message = last.Message
		}
		last = ev
		s.UpdateSuffix(" " + FormatEvent(ev))
	}
	if started && !current.Terminal() {
		s.Stop()
	}
}

// FormatEvent renders an event as a one-line status. Analysis events carry
// the step counter and a progress bar.
func FormatEvent(ev orchestration.Event) string {
	if ev.Stage != flow.StageAnalysis {
		return ev.Message
	}
	return fmt.Sprintf("[%d/%d] %-36s %s %3d%%",
		ev.Step+1, len(flow.AnalysisSteps), ev.Message,
		progressBar(float64(ev.Percent)/100, ProgressBarWidth), ev.Percent)
}
