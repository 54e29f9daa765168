package flow

import "testing"

func TestStage_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageIntro, "Intro"},
		{StageUpload, "Upload"},
		{StageLocation, "Location"},
		{StageAnalysis, "Analysis"},
		{StageResults, "Results"},
		{Stage(42), "Unknown"},
		{Stage(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(tt.stage), got, tt.want)
		}
	}
}

func TestStage_NextFollowsFlowOrder(t *testing.T) {
	t.Parallel()
	for i, s := range Stages[:len(Stages)-1] {
		next, ok := s.Next()
		if !ok {
			t.Fatalf("%s should have a successor", s)
		}
		if next != Stages[i+1] {
			t.Errorf("%s.Next() = %s, want %s", s, next, Stages[i+1])
		}
		if !s.Before(next) {
			t.Errorf("%s should come before %s", s, next)
		}
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	if _, ok := StageResults.Next(); ok {
		t.Error("Results should have no successor")
	}
	if !StageResults.Terminal() {
		t.Error("Results should be terminal")
	}
}

func TestSession_CloneSharesNoFile(t *testing.T) {
	t.Parallel()
	s := Session{SelectedFile: &FileRef{Name: "resume.pdf"}}
	c := s.clone()
	c.SelectedFile.Name = "other.pdf"
	if s.SelectedFile.Name != "resume.pdf" {
		t.Errorf("clone mutated original file: %q", s.SelectedFile.Name)
	}
	if (Session{}).FileName() != "" {
		t.Error("empty session should have no file name")
	}
}

func TestStepAt(t *testing.T) {
	t.Parallel()
	tests := []struct{ ticks, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {3, 3}, {4, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := StepAt(tt.ticks); got != tt.want {
			t.Errorf("StepAt(%d) = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}

func TestPercentAt(t *testing.T) {
	t.Parallel()
	tests := []struct{ ticks, want int }{
		{-5, 0}, {0, 0}, {42, 42}, {100, 100}, {250, 100},
	}
	for _, tt := range tests {
		if got := PercentAt(tt.ticks); got != tt.want {
			t.Errorf("PercentAt(%d) = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}
