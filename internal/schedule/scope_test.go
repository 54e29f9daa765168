package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestScope_AfterFires(t *testing.T) {
	t.Parallel()
	s := NewScope(context.Background())
	defer s.Close()

	fired := make(chan struct{})
	if !s.After(10*time.Millisecond, func() { close(fired) }) {
		t.Fatal("After on an open scope should schedule")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestScope_CloseCancelsPendingTimers(t *testing.T) {
	t.Parallel()
	s := NewScope(context.Background())

	var fired atomic.Bool
	s.After(50*time.Millisecond, func() { fired.Store(true) })
	s.Close()

	time.Sleep(100 * time.Millisecond)
	if fired.Load() {
		t.Error("callback ran after Close")
	}
	if !s.Closed() {
		t.Error("Closed() should report true")
	}
}

func TestScope_EveryStopsOnClose(t *testing.T) {
	t.Parallel()
	s := NewScope(context.Background())

	var ticks atomic.Int32
	s.Every(5*time.Millisecond, func() { ticks.Add(1) })

	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Close()
	after := ticks.Load()
	if after < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", after)
	}

	time.Sleep(30 * time.Millisecond)
	if ticks.Load() != after {
		t.Errorf("ticker kept firing after Close: %d → %d", after, ticks.Load())
	}
}

func TestScope_ScheduleAfterCloseIsRejected(t *testing.T) {
	t.Parallel()
	s := NewScope(context.Background())
	s.Close()
	s.Close() // idempotent

	if s.After(time.Millisecond, func() {}) {
		t.Error("After should refuse on a closed scope")
	}
	if s.Every(time.Millisecond, func() {}) {
		t.Error("Every should refuse on a closed scope")
	}
}

func TestScope_ParentCancellationCloses(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScope(ctx)

	var fired atomic.Bool
	s.After(50*time.Millisecond, func() { fired.Store(true) })
	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scope not closed after parent cancellation")
	}
	time.Sleep(100 * time.Millisecond)
	if fired.Load() {
		t.Error("callback ran after parent cancellation")
	}
}

func TestScope_CallbacksAreSerialized(t *testing.T) {
	t.Parallel()
	s := NewScope(context.Background())

	var inFlight, maxInFlight atomic.Int32
	work := func() {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
	}
	s.Every(time.Millisecond, work)
	s.Every(time.Millisecond, work)
	for i := 0; i < 10; i++ {
		s.After(time.Duration(i)*time.Millisecond, work)
	}

	time.Sleep(50 * time.Millisecond)
	s.Close()

	if maxInFlight.Load() > 1 {
		t.Errorf("callbacks overlapped: max in flight %d", maxInFlight.Load())
	}
}
