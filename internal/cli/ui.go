//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// SpinnerRefreshRate is the frame interval of the headless spinner.
	SpinnerRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the analysis bar width in cells.
	ProgressBarWidth = 30
	// CategoryBarWidth is the width of the job category match bars.
	CategoryBarWidth = 20
)

// Spinner is the part of a terminal spinner the presenter drives.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// stageSpinner shows the current stage message after a braille spinner.
type stageSpinner struct {
	*spinner.Spinner
}

// UpdateSuffix swaps the message while the animation goroutine is running.
func (s stageSpinner) UpdateSuffix(suffix string) {
	s.Lock()
	defer s.Unlock()
	s.Suffix = suffix
}

// newSpinner is replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	return stageSpinner{spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)}
}

// progressBar fills length cells in proportion to progress, clamped to [0, 1].
func progressBar(progress float64, length int) string {
	filled := int(min(max(progress, 0), 1) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}
