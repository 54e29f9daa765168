package flow

import (
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/resumescan/internal/errors"
)

// ErrFileAlreadySet is returned when SubmitFile is called a second time.
var ErrFileAlreadySet = apperrors.TransitionError{
	Operation: "SubmitFile",
	From:      StageUpload.String(),
	Reason:    "a file has already been submitted",
}

// Transition is one entry of the controller history.
type Transition struct {
	From Stage
	To   Stage
	At   time.Time
}

// Controller owns the current stage and the session.
//
// It is safe for concurrent use. Observers are notified synchronously, in
// transition order, after the state has been updated; they must not call
// Controller operations from inside OnStageChange.
type Controller struct {
	mu        sync.RWMutex
	stage     Stage
	session   Session
	enteredAt time.Time
	history   []Transition

	notifyMu  sync.Mutex
	observers []Observer

	now func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithObserver subscribes obs before the controller is returned.
func WithObserver(obs Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, obs) }
}

// NewController returns a controller at StageIntro with an empty session.
func NewController(opts ...Option) *Controller {
	c := &Controller{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.stage = StageIntro
	c.enteredAt = c.now()
	c.session = newSession(c.enteredAt)
	return c
}

// Subscribe adds an observer for subsequent stage changes.
func (c *Controller) Subscribe(obs Observer) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.observers = append(c.observers, obs)
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stage
}

// Session returns a copy of the session.
func (c *Controller) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.clone()
}

// History returns the transitions performed so far, oldest first.
func (c *Controller) History() []Transition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Transition, len(c.history))
	copy(out, c.history)
	return out
}

// CompleteIntro moves Intro → Upload.
func (c *Controller) CompleteIntro() error {
	return c.advance("CompleteIntro", StageIntro, nil)
}

// SubmitFile stores file in the session. It does not change the stage and
// performs no type validation; the upload boundary is expected to have done so.
func (c *Controller) SubmitFile(file FileRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageUpload {
		return apperrors.TransitionError{Operation: "SubmitFile", From: c.stage.String()}
	}
	if c.session.SelectedFile != nil {
		return ErrFileAlreadySet
	}
	c.session.SelectedFile = &file
	return nil
}

// AdvanceAfterUpload moves Upload → Location once a file has been stored.
func (c *Controller) AdvanceAfterUpload() error {
	return c.advance("AdvanceAfterUpload", StageUpload, func(s *Session) error {
		if s.SelectedFile == nil {
			return apperrors.TransitionError{
				Operation: "AdvanceAfterUpload",
				From:      StageUpload.String(),
				Reason:    "no file submitted",
			}
		}
		return nil
	})
}

// SubmitLocation stores text verbatim and moves Location → Analysis.
// Text that is empty after trimming whitespace is rejected.
func (c *Controller) SubmitLocation(text string) error {
	return c.advance("SubmitLocation", StageLocation, func(s *Session) error {
		if strings.TrimSpace(text) == "" {
			return apperrors.ValidationError{Field: "location", Message: "must not be empty"}
		}
		s.Location = text
		return nil
	})
}

// CompleteAnalysis moves Analysis → Results.
func (c *Controller) CompleteAnalysis() error {
	return c.advance("CompleteAnalysis", StageAnalysis, nil)
}

// advance performs the transition out of from. mutate runs under the lock
// before the stage changes; an error from it aborts the transition.
func (c *Controller) advance(op string, from Stage, mutate func(*Session) error) error {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if c.stage != from {
		current := c.stage
		c.mu.Unlock()
		return apperrors.TransitionError{Operation: op, From: current.String()}
	}
	to, ok := from.Next()
	if !ok {
		c.mu.Unlock()
		return apperrors.TransitionError{Operation: op, From: from.String(), Reason: "terminal stage"}
	}
	if mutate != nil {
		next := c.session
		if err := mutate(&next); err != nil {
			c.mu.Unlock()
			return err
		}
		c.session = next
	}
	now := c.now()
	change := StageChange{
		From:  from,
		To:    to,
		At:    now,
		Dwell: now.Sub(c.enteredAt),
	}
	c.stage = to
	c.enteredAt = now
	c.history = append(c.history, Transition{From: from, To: to, At: now})
	change.Session = c.session.clone()
	observers := c.observers
	c.mu.Unlock()

	for _, obs := range observers {
		obs.OnStageChange(change)
	}
	return nil
}
