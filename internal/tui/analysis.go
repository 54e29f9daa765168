package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/ui"
)

// analysisModel is the Analysis screen. Step and progress advance on
// independent tickers.
type analysisModel struct {
	stepTicks     int
	progressTicks int
	bar           progress.Model
}

func newAnalysisModel() analysisModel {
	return analysisModel{bar: newProgressBar()}
}

func newProgressBar() progress.Model {
	t := ui.GetCurrentTUITheme()
	from, okFrom := t.Accent.(lipgloss.Color)
	to, okTo := t.AccentAlt.(lipgloss.Color)
	if okFrom && okTo {
		return progress.New(progress.WithGradient(string(from), string(to)), progress.WithoutPercentage())
	}
	return progress.New(progress.WithSolidFill(""), progress.WithoutPercentage())
}

func (a analysisModel) step() int    { return flow.StepAt(a.stepTicks) }
func (a analysisModel) percent() int { return flow.PercentAt(a.progressTicks) }

func (a analysisModel) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Analyzing Your Resume"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("AI is processing your professional profile"))
	b.WriteString("\n\n")

	current := a.step()
	for i, s := range flow.AnalysisSteps {
		switch {
		case i < current:
			b.WriteString(successStyle.Render("✓ " + s))
		case i == current:
			b.WriteString(spin + " " + accentStyle.Render(s))
		default:
			b.WriteString(dimStyle.Render("  " + s))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	pct := a.percent()
	b.WriteString(a.bar.ViewAs(float64(pct) / 100))
	b.WriteString(fmt.Sprintf(" %3d%%", pct))
	return b.String()
}
