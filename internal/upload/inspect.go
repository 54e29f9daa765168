package upload

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/agbru/resumescan/internal/flow"
)

// Details is document metadata shown next to an accepted upload.
type Details struct {
	// Kind is "pdf" or "docx".
	Kind string
	// Pages is the PDF page count, zero when unknown or not a PDF.
	Pages int
	// Readable reports whether the document could be opened at all.
	Readable bool
}

// Summary renders d for display, e.g. "PDF, 2 pages".
func (d Details) Summary() string {
	kind := strings.ToUpper(d.Kind)
	switch {
	case !d.Readable:
		return kind + ", preview unavailable"
	case d.Pages == 1:
		return kind + ", 1 page"
	case d.Pages > 1:
		return fmt.Sprintf("%s, %d pages", kind, d.Pages)
	default:
		return kind
	}
}

// Inspect opens the document only to report metadata; its content is never
// read. Errors are informative: an unreadable file is still a valid upload.
func Inspect(file flow.FileRef) (details Details, err error) {
	if file.Path == "" {
		return Details{}, fmt.Errorf("inspect %s: no local path", file.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			details = Details{Kind: details.Kind}
			err = fmt.Errorf("inspect %s: %v", file.Name, r)
		}
	}()

	if strings.HasSuffix(file.Name, SuffixDOCX) {
		details.Kind = "docx"
		doc, err := docx.ReadDocxFile(file.Path)
		if err != nil {
			return details, fmt.Errorf("inspect %s: %w", file.Name, err)
		}
		defer doc.Close()
		details.Readable = true
		return details, nil
	}

	details.Kind = "pdf"
	f, r, err := pdf.Open(file.Path)
	if err != nil {
		return details, fmt.Errorf("inspect %s: %w", file.Name, err)
	}
	defer f.Close()
	details.Pages = r.NumPage()
	details.Readable = true
	return details, nil
}
