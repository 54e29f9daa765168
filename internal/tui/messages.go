package tui

import (
	"time"

	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/upload"
)

// Stage timers carry the generation of the stage that scheduled them.
// Update drops any timer whose generation is not the current one.

type introDoneMsg struct{ gen uint64 }

type uploadDoneMsg struct {
	gen  uint64
	file flow.FileRef
}

type fileInspectedMsg struct {
	gen     uint64
	details upload.Details
}

type locationDoneMsg struct {
	gen  uint64
	text string
}

type stepTickMsg struct{ gen uint64 }

type progressTickMsg struct{ gen uint64 }

type analysisDoneMsg struct{ gen uint64 }

// ClockTickMsg refreshes the elapsed time in the header.
type ClockTickMsg time.Time

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}
