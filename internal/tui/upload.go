package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/format"
	"github.com/agbru/resumescan/internal/upload"
)

// uploadModel is the Upload screen: a path field and a file browser.
type uploadModel struct {
	input      textinput.Model
	picker     filepicker.Model
	browsing   bool
	processing bool
	// file is set once the controller has stored the résumé.
	file    *flow.FileRef
	details *upload.Details
}

func newUploadModel() uploadModel {
	in := textinput.New()
	in.Placeholder = "~/Documents/resume.pdf"
	in.Prompt = "Path: "
	in.CharLimit = 4096
	in.Width = 48

	fp := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}
	fp.ShowPermissions = false
	return uploadModel{input: in, picker: fp}
}

// uploaded reports whether the file has been stored and the screen waits
// for "Continue Analysis".
func (u uploadModel) uploaded() bool { return u.file != nil }

// editable reports whether the screen accepts a new file.
func (u uploadModel) editable() bool { return !u.processing && u.file == nil }

func (u uploadModel) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload Your Resume"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Let AI analyze your professional profile"))
	b.WriteString("\n\n")

	switch {
	case u.processing:
		b.WriteString(spin + " Processing your resume...")
	case u.file != nil:
		b.WriteString(successStyle.Render("✓ Resume uploaded"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s\n", accentStyle.Render(u.file.Name)))
		meta := format.FormatBytes(u.file.Size)
		if u.details != nil {
			meta += " · " + u.details.Summary()
		}
		b.WriteString("  " + dimStyle.Render(meta))
		b.WriteString("\n\n")
		b.WriteString(chipMatchStyle.Render("[ Continue Analysis ]"))
	case u.browsing:
		b.WriteString(dimStyle.Render(u.picker.CurrentDirectory))
		b.WriteString("\n")
		b.WriteString(u.picker.View())
	default:
		b.WriteString(u.input.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Type, paste or drop a file. Supports PDF and DOCX files only."))
	}
	return b.String()
}
