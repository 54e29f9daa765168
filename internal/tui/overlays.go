package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/resumescan/internal/errors"
)

// alertText turns an upload failure into the modal message.
func alertText(err error) string {
	var unsupported apperrors.UnsupportedFileError
	if errors.As(err, &unsupported) {
		return apperrors.UnsupportedFileMessage
	}
	return err.Error()
}

// renderAlert draws the modal alert centered on the screen.
func renderAlert(msg string, width, height int) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("⚠  " + msg))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press enter or esc to dismiss"))
	return place(alertStyle.Render(b.String()), width, height)
}

// renderHelpOverlay draws the full key help centered on the screen.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("RESUME ANALYZER - HELP"))
	b.WriteString("\n\n")
	b.WriteString(m.footer.FullView(m.keymap.keysFor(&m)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press ? or esc to close this help"))
	return place(overlayStyle.Render(b.String()), m.width, m.height)
}

func place(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
