//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package flow

import (
	"time"

	"github.com/agbru/resumescan/internal/logging"
)

// StageChange is delivered to observers after every transition.
type StageChange struct {
	From    Stage
	To      Stage
	Session Session
	At      time.Time
	// Dwell is how long the controller stayed in From.
	Dwell time.Duration
}

// Observer receives stage-change notifications.
type Observer interface {
	OnStageChange(change StageChange)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(change StageChange)

// OnStageChange calls f.
func (f ObserverFunc) OnStageChange(change StageChange) { f(change) }

// LogObserver logs every stage change at info level.
func LogObserver(logger logging.Logger) Observer {
	return ObserverFunc(func(change StageChange) {
		logger.Info("stage changed",
			logging.String("session", change.Session.ID),
			logging.String("from", change.From.String()),
			logging.String("to", change.To.String()),
			logging.Duration("dwell", change.Dwell),
		)
	})
}
