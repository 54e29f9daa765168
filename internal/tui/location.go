package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/agbru/resumescan/internal/flow"
)

// locationModel is the Location screen.
type locationModel struct {
	input textinput.Model
	// quick is the index of the selected quick location, -1 for none.
	quick      int
	processing bool
}

func newLocationModel() locationModel {
	in := textinput.New()
	in.Placeholder = "City, State"
	in.Prompt = "Location: "
	in.CharLimit = 120
	in.Width = 40
	return locationModel{input: in, quick: -1}
}

// selectQuick overwrites the field with quick location i.
func (l *locationModel) selectQuick(i int) {
	n := len(flow.QuickLocations)
	i = ((i % n) + n) % n
	l.quick = i
	l.input.SetValue(flow.QuickLocations[i])
	l.input.CursorEnd()
}

// cycle moves the quick selection by delta, starting from the first or last
// entry when nothing is selected yet.
func (l *locationModel) cycle(delta int) {
	if l.quick < 0 {
		if delta > 0 {
			l.selectQuick(0)
		} else {
			l.selectQuick(len(flow.QuickLocations) - 1)
		}
		return
	}
	l.selectQuick(l.quick + delta)
}

// syncQuick drops the quick highlight once the text no longer matches.
func (l *locationModel) syncQuick() {
	if l.quick >= 0 && l.input.Value() != flow.QuickLocations[l.quick] {
		l.quick = -1
	}
}

func (l locationModel) ready() bool {
	return strings.TrimSpace(l.input.Value()) != ""
}

func (l locationModel) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Where Are You Looking?"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Enter your preferred job location for targeted opportunities"))
	b.WriteString("\n\n")
	b.WriteString(l.input.View())
	b.WriteString("\n\n")

	chips := make([]string, len(flow.QuickLocations))
	for i, loc := range flow.QuickLocations {
		label := string(rune('1'+i)) + " " + loc
		if i == l.quick {
			chips[i] = chipMatchStyle.Render("▸ " + label)
		} else {
			chips[i] = chipStyle.Render("  " + label)
		}
	}
	b.WriteString(dimStyle.Render("Quick select (alt+1-4):"))
	b.WriteString("\n")
	b.WriteString(strings.Join(chips, "\n"))
	b.WriteString("\n\n")

	switch {
	case l.processing:
		b.WriteString(spin + " Processing...")
	case l.ready():
		b.WriteString(chipMatchStyle.Render("[ Analyze Location ]"))
	default:
		b.WriteString(dimStyle.Render("[ Analyze Location ]"))
	}
	return b.String()
}
