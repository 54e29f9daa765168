// Package ui holds the color themes shared by the headless report printer
// and the TUI. Plain output uses ANSI escape codes; the TUI uses lipgloss
// colors derived from the same active theme.
package ui
