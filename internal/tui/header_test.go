package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/resumescan/internal/flow"
)

func TestHeaderModel_ElapsedFreezesWhenDone(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	h := NewHeaderModel("v1.0.0", start)
	h.SetWidth(120)

	h.Tick(start.Add(65 * time.Second))
	if got := h.Elapsed(); got != 65*time.Second {
		t.Fatalf("Elapsed() = %v, want 65s", got)
	}
	if !strings.Contains(h.View(), "01:05") {
		t.Errorf("View() should show 01:05, got %q", h.View())
	}

	h.SetDone(start.Add(90 * time.Second))
	h.Tick(start.Add(10 * time.Minute))
	if got := h.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() after done = %v, want 1m30s", got)
	}
}

func TestHeaderModel_Breadcrumb(t *testing.T) {
	h := NewHeaderModel("dev", time.Now())
	h.SetWidth(120)
	h.SetStage(flow.StageLocation)
	view := h.View()
	for _, s := range flow.Stages {
		if !strings.Contains(view, s.String()) {
			t.Errorf("breadcrumb missing %s: %q", s, view)
		}
	}
	if strings.Contains(view, "dev") {
		t.Error("dev builds should not print a version")
	}
}
