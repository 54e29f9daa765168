package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// These tests mutate the package-level theme and must not run in parallel.

func TestInitTheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	t.Run("NoColorFlag", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})

	t.Run("NO_COLOR env", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})
}

func TestSetTheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"neon", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	SetCurrentTheme(NoColorTheme)
	if _, ok := GetCurrentTUITheme().Accent.(lipgloss.NoColor); !ok {
		t.Error("no-color theme should map to NoColorTUITheme")
	}
	SetCurrentTheme(LightTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("colored themes should map to DarkTUITheme")
	}
}

func TestPaint(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	SetCurrentTheme(NoColorTheme)
	if got := Paint(ColorSuccess(), "React"); got != "React" {
		t.Errorf("Paint without colors = %q, want plain text", got)
	}
	SetCurrentTheme(DarkTheme)
	if got := Paint(ColorSuccess(), "React"); got != DarkTheme.Success+"React"+DarkTheme.Reset {
		t.Errorf("Paint = %q", got)
	}
}
