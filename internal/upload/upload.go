// Package upload implements the file input boundary of the flow: building a
// file reference from a local path, the advisory type check, and best-effort
// document metadata for the upload confirmation.
package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/resumescan/internal/errors"
	"github.com/agbru/resumescan/internal/flow"
)

// Recognized content types and suffixes.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	SuffixDOCX      = ".docx"
)

// Validate accepts a PDF by declared content type or a DOCX by file name
// suffix, mirroring a browser file input. It is a client-side convenience,
// not a trust boundary: nothing checks the bytes match the declared type.
func Validate(file flow.FileRef) error {
	if file.ContentType == ContentTypePDF || strings.HasSuffix(file.Name, SuffixDOCX) {
		return nil
	}
	return apperrors.UnsupportedFileError{Name: file.Name, ContentType: file.ContentType}
}

// DeclaredContentType returns the content type a browser would declare for
// name, based on its extension. Unknown extensions yield "".
func DeclaredContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if ext == SuffixDOCX {
		return ContentTypeDOCX
	}
	mediaType, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return mediaType
}

// CleanPath normalizes a path typed, pasted or dropped onto a terminal.
// Terminals deliver dropped files as quoted or backslash-escaped paths,
// sometimes as file:// URLs.
func CleanPath(raw string) string {
	p := strings.TrimSpace(raw)
	if len(p) >= 2 {
		if (p[0] == '\'' && p[len(p)-1] == '\'') || (p[0] == '"' && p[len(p)-1] == '"') {
			p = p[1 : len(p)-1]
		}
	}
	p = strings.TrimPrefix(p, "file://")
	p = strings.ReplaceAll(p, `\ `, " ")
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

// Open builds a file reference for the file at raw (after CleanPath).
func Open(raw string) (flow.FileRef, error) {
	path := CleanPath(raw)
	if path == "" {
		return flow.FileRef{}, apperrors.ValidationError{Field: "file", Message: "no file selected"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return flow.FileRef{}, apperrors.WrapError(err, "open resume")
	}
	if info.IsDir() {
		return flow.FileRef{}, apperrors.ValidationError{Field: "file", Message: fmt.Sprintf("%s is a directory", path)}
	}
	name := filepath.Base(path)
	return flow.FileRef{
		Name:        name,
		ContentType: DeclaredContentType(name),
		Size:        info.Size(),
		Path:        path,
	}, nil
}

// Accept opens raw and validates it in one step.
func Accept(raw string) (flow.FileRef, error) {
	ref, err := Open(raw)
	if err != nil {
		return flow.FileRef{}, err
	}
	if err := Validate(ref); err != nil {
		return flow.FileRef{}, err
	}
	return ref, nil
}

// KindOf names an accepted file's format, "pdf" or "docx".
func KindOf(file flow.FileRef) string {
	if file.ContentType == ContentTypePDF {
		return "pdf"
	}
	return "docx"
}
