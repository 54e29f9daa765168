package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/resumescan/internal/ui"
)

// Style variables for the TUI.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	subtitleStyle    lipgloss.Style
	dimStyle         lipgloss.Style
	accentStyle      lipgloss.Style
	crumbActiveStyle lipgloss.Style
	crumbDoneStyle   lipgloss.Style
	successStyle     lipgloss.Style
	warningStyle     lipgloss.Style
	errorStyle       lipgloss.Style
	chipStyle        lipgloss.Style
	chipMatchStyle   lipgloss.Style
	tabStyle         lipgloss.Style
	tabActiveStyle   lipgloss.Style
	alertStyle       lipgloss.Style
	overlayStyle     lipgloss.Style
	helpKeyStyle     lipgloss.Style
	helpDescStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.AccentAlt)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	accentStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	crumbActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	crumbDoneStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	warningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	chipStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	chipMatchStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true).
		Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	alertStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Error).
		Padding(1, 3).
		Align(lipgloss.Center)

	overlayStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)

	helpKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
