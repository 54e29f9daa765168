// Package schedule provides timers bound to the lifetime of one stage.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Scope owns the timers and tickers scheduled for one stage. Callbacks are
// serialized, so a scope behaves like a single-threaded event loop. Once
// Close returns no callback is running and none will run again.
//
// Callbacks must not call Close on their own scope.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	timers  []*time.Timer
	tickers []*time.Ticker
	wg      sync.WaitGroup
}

// NewScope returns a scope that is closed when parent is done.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	s := &Scope{ctx: ctx, cancel: cancel}
	go func() {
		<-ctx.Done()
		s.Close()
	}()
	return s
}

// Context is cancelled when the scope closes.
func (s *Scope) Context() context.Context { return s.ctx }

// Done is closed when the scope closes.
func (s *Scope) Done() <-chan struct{} { return s.ctx.Done() }

// After runs fn once after d unless the scope closes first.
// It reports false if the scope is already closed.
func (s *Scope) After(d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.timers = append(s.timers, time.AfterFunc(d, func() { s.run(fn) }))
	return true
}

// Every runs fn every d until the scope closes.
// It reports false if the scope is already closed.
func (s *Scope) Every(d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	ticker := time.NewTicker(d)
	s.tickers = append(s.tickers, ticker)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.run(fn)
			}
		}
	}()
	return true
}

func (s *Scope) run(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn()
}

// Close stops every timer and ticker. It is idempotent.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, t := range s.timers {
		t.Stop()
	}
	for _, t := range s.tickers {
		t.Stop()
	}
	s.timers, s.tickers = nil, nil
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
