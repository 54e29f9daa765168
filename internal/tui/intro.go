package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderIntro draws the splash screen.
func renderIntro(spin string, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Resume Analyzer"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("AI-powered resume analysis and job matching"))
	b.WriteString("\n\n")
	b.WriteString(spin + " " + dimStyle.Render("Loading..."))
	return centered(panelStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())), width)
}

// centered places block in the middle of a line of the given width.
func centered(block string, width int) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
