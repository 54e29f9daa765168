package flow

import (
	"time"

	"github.com/google/uuid"
)

// FileRef describes the résumé selected at the Upload stage.
type FileRef struct {
	// Name is the base file name, e.g. "resume.pdf".
	Name string
	// ContentType is the declared content type, e.g. "application/pdf".
	ContentType string
	// Size is the file size in bytes, zero when unknown.
	Size int64
	// Path is the local path the file was picked from, if any.
	Path string
}

// Session is the user-supplied data carried across stages.
type Session struct {
	ID           string
	StartedAt    time.Time
	SelectedFile *FileRef
	Location     string
}

// HasFile reports whether a file has been stored.
func (s Session) HasFile() bool { return s.SelectedFile != nil }

// FileName returns the selected file name or "" when none is set.
func (s Session) FileName() string {
	if s.SelectedFile == nil {
		return ""
	}
	return s.SelectedFile.Name
}

func newSession(now time.Time) Session {
	return Session{ID: uuid.NewString(), StartedAt: now}
}

// clone returns a copy that shares no pointers with s.
func (s Session) clone() Session {
	if s.SelectedFile != nil {
		f := *s.SelectedFile
		s.SelectedFile = &f
	}
	return s
}
