package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is an ANSI color scheme for plain terminal output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary colors headings and the analyzed file name.
	Primary string
	// Secondary is used for labels and hints.
	Secondary string
	// Success marks matching skills and completed steps.
	Success string
	// Warning marks skills to improve.
	Warning string
	// Error marks missing skills and rejections.
	Error string
	Info  string
	Bold  string
	Reset string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;135m", // Violet
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;42m",  // Green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;203m", // Red
		Info:      "\033[38;5;75m",  // Blue
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;91m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;25m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme is the lipgloss palette of the interactive UI.
type TUITheme struct {
	Text      lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
	AccentAlt lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
}

var (
	// DarkTUITheme follows the violet-to-blue palette of the intro logo.
	DarkTUITheme = TUITheme{
		Text:      lipgloss.Color("#E5E7EB"),
		Border:    lipgloss.Color("#6D28D9"),
		Accent:    lipgloss.Color("#A78BFA"),
		AccentAlt: lipgloss.Color("#60A5FA"),
		Success:   lipgloss.Color("#34D399"),
		Warning:   lipgloss.Color("#FBBF24"),
		Error:     lipgloss.Color("#F87171"),
		Dim:       lipgloss.Color("#6B7280"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:      lipgloss.NoColor{},
		Border:    lipgloss.NoColor{},
		Accent:    lipgloss.NoColor{},
		AccentAlt: lipgloss.NoColor{},
		Success:   lipgloss.NoColor{},
		Warning:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
		Dim:       lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name: "dark", "light" or "none".
// Unknown names default to dark theme.
func SetTheme(name string) {
	switch name {
	case LightTheme.Name:
		SetCurrentTheme(LightTheme)
	case NoColorTheme.Name:
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/):
// if noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
