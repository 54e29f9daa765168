package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/format"
)

// HeaderModel renders the top bar: title, stage breadcrumb, elapsed time.
type HeaderModel struct {
	startTime time.Time
	now       time.Time
	endTime   time.Time
	version   string
	stage     flow.Stage
	width     int
}

// NewHeaderModel creates a header whose clock starts at start.
func NewHeaderModel(version string, start time.Time) HeaderModel {
	return HeaderModel{startTime: start, now: start, version: version}
}

// SetStage moves the breadcrumb.
func (h *HeaderModel) SetStage(s flow.Stage) { h.stage = s }

// Tick advances the clock unless the header is done.
func (h *HeaderModel) Tick(now time.Time) {
	if h.endTime.IsZero() {
		h.now = now
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone(now time.Time) {
	h.now = now
	h.endTime = now
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed is the session time shown in the header.
func (h HeaderModel) Elapsed() time.Duration { return h.now.Sub(h.startTime) }

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Resume Analyzer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText)

	crumbs := make([]string, len(flow.Stages))
	for i, s := range flow.Stages {
		switch {
		case s == h.stage:
			crumbs[i] = crumbActiveStyle.Render(s.String())
		case s.Before(h.stage):
			crumbs[i] = crumbDoneStyle.Render(s.String())
		default:
			crumbs[i] = dimStyle.Render(s.String())
		}
	}
	middle := strings.Join(crumbs, dimStyle.Render(" › "))
	right := accentStyle.Render(format.FormatElapsed(h.Elapsed()))

	used := lipgloss.Width(left) + lipgloss.Width(middle) + lipgloss.Width(right)
	gap := max(h.width-2-used, 2)
	row := left + spaces(gap/2) + middle + spaces(gap-gap/2) + right
	return headerStyle.Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
