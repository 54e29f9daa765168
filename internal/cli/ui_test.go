package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/resumescan/internal/cli/mocks"
	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/orchestration"
	"github.com/agbru/resumescan/internal/ui"
)

// withPlainTheme disables colors for the duration of the test.
func withPlainTheme(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		progress float64
		length   int
		want     string
	}{
		{"Empty", 0, 4, "░░░░"},
		{"Half", 0.5, 4, "██░░"},
		{"Full", 1, 4, "████"},
		{"Overflow", 1.7, 4, "████"},
		{"Negative", -0.2, 4, "░░░░"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := progressBar(tt.progress, tt.length); got != tt.want {
				t.Errorf("progressBar(%v, %d) = %q, want %q", tt.progress, tt.length, got, tt.want)
			}
		})
	}
}

func TestStageSpinner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := stageSpinner{spinner.New(spinner.CharSets[11], 10*time.Millisecond, spinner.WithWriter(&buf))}

	s.Start()
	s.UpdateSuffix(" Processing your resume...")
	s.Stop()
	if s.Suffix != " Processing your resume..." {
		t.Errorf("Suffix = %q", s.Suffix)
	}
}

func TestFormatEvent(t *testing.T) {
	t.Parallel()
	got := FormatEvent(orchestration.Event{Stage: flow.StageUpload, Message: "Processing your resume..."})
	if got != "Processing your resume..." {
		t.Errorf("FormatEvent(upload) = %q", got)
	}

	got = FormatEvent(orchestration.Event{Stage: flow.StageAnalysis, Step: 2, Percent: 50, Message: flow.AnalysisSteps[2]})
	for _, want := range []string{"[3/4]", "Matching job categories...", " 50%", strings.Repeat("█", ProgressBarWidth/2)} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatEvent(analysis) = %q, missing %q", got, want)
		}
	}
}

func TestCLIProgressReporter_DisplayProgress(t *testing.T) {
	withPlainTheme(t)
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(" Resume Analyzer"),
		mockS.EXPECT().Stop(),
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(gomock.Any()).Times(2),
		mockS.EXPECT().Stop(),
	)

	events := make(chan orchestration.Event, 4)
	events <- orchestration.Event{Stage: flow.StageIntro, Message: "Resume Analyzer"}
	events <- orchestration.Event{Stage: flow.StageAnalysis, Message: flow.AnalysisSteps[0]}
	events <- orchestration.Event{Stage: flow.StageAnalysis, Percent: 1}
	events <- orchestration.Event{Stage: flow.StageResults, Percent: 100}
	close(events)

	var out bytes.Buffer
	CLIProgressReporter{}.DisplayProgress(events, &out)

	want := "✓ Resume Analyzer ready\n✓ Analysis finished\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestCLIProgressReporter_StopsWhenInterrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(" Processing..."),
		mockS.EXPECT().Stop(),
	)

	events := make(chan orchestration.Event, 1)
	events <- orchestration.Event{Stage: flow.StageLocation, Message: "Processing..."}
	close(events)

	CLIProgressReporter{}.DisplayProgress(events, &bytes.Buffer{})
}
