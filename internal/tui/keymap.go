package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the TUI.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
	Toggle  key.Binding
	Quick   [4]key.Binding
	NextLoc key.Binding
	PrevLoc key.Binding
	Up      key.Binding
	Down    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "dismiss"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch"),
		),
		NextLoc: key.NewBinding(
			key.WithKeys("ctrl+n", "down"),
			key.WithHelp("ctrl+n", "next city"),
		),
		PrevLoc: key.NewBinding(
			key.WithKeys("ctrl+p", "up"),
			key.WithHelp("ctrl+p", "prev city"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
	for i := range km.Quick {
		n := string(rune('1' + i))
		km.Quick[i] = key.NewBinding(
			key.WithKeys("alt+"+n, "ctrl+"+n),
			key.WithHelp("alt+1-4", "quick select"),
		)
	}
	return km
}

// stageKeys adapts the key map to bubbles/help for one screen.
type stageKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s stageKeys) ShortHelp() []key.Binding  { return s.short }
func (s stageKeys) FullHelp() [][]key.Binding { return s.full }
