package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/agbru/resumescan/internal/flow"
)

// FooterModel renders the key hints for the active screen.
type FooterModel struct {
	help  help.Model
	width int
}

// NewFooterModel creates a footer with themed help styles.
func NewFooterModel() FooterModel {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = dimStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = dimStyle
	return FooterModel{help: h}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// View renders the short help for keys.
func (f FooterModel) View(keys help.KeyMap) string {
	return " " + f.help.View(keys)
}

// FullView renders every binding in columns, for the help overlay.
func (f FooterModel) FullView(keys help.KeyMap) string {
	h := f.help
	h.ShowAll = true
	return h.View(keys)
}

// keysFor returns the bindings that apply to the given screen.
func (km KeyMap) keysFor(m *Model) stageKeys {
	global := []key.Binding{km.Help, km.Quit}
	var local []key.Binding
	switch {
	case m.alert != "":
		local = []key.Binding{km.Dismiss}
	case m.stage == flow.StageIntro:
		skip := km.Confirm
		skip.SetHelp("any key", "skip")
		local = []key.Binding{skip}
	case m.stage == flow.StageUpload:
		if m.upload.uploaded() {
			cont := km.Confirm
			cont.SetHelp("enter", "continue analysis")
			local = []key.Binding{cont}
		} else if !m.upload.processing {
			browse := km.Toggle
			if m.upload.browsing {
				browse.SetHelp("tab", "type a path")
			} else {
				browse.SetHelp("tab", "browse files")
			}
			pick := km.Confirm
			pick.SetHelp("enter", "upload")
			local = []key.Binding{pick, browse}
		}
	case m.stage == flow.StageLocation:
		if !m.location.processing {
			next := km.Confirm
			next.SetHelp("enter", "analyze")
			local = []key.Binding{next, km.Quick[0], km.NextLoc, km.PrevLoc}
		}
	case m.stage == flow.StageResults:
		tabs := km.Toggle
		tabs.SetHelp("tab", "switch tab")
		local = []key.Binding{tabs, km.Up, km.Down}
	}
	return stageKeys{
		short: append(local, global...),
		full:  [][]key.Binding{local, global},
	}
}
