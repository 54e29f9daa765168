package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _resumescan_completions resumescan", "--file|-f)", "compgen -f", `compgen -W "bash zsh fish powershell"`}},
		{"zsh", []string{"#compdef resumescan", "'(-f --file)'{-f,--file}'[Resume to analyze without the UI]:file:_files'", "--log-level[Log level]:level:(debug info warn error disabled)"}},
		{"fish", []string{"complete -c resumescan -s f -l file", "-rF", "# Timing", "complete -c resumescan -l no-color -d 'Disable colored output'"}},
		{"powershell", []string{"Register-ArgumentCompleter -CommandName 'resumescan'", "@{Name = '--quiet'", "'--speed' {"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(&bytes.Buffer{}, "tcsh"); err == nil {
		t.Error("expected an error for tcsh")
	}
}

// TestFlagRegistry_Unique guards against duplicate flag names.
func TestFlagRegistry_Unique(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			if seen[name] {
				t.Errorf("duplicate flag %s", name)
			}
			seen[name] = true
		}
	}
}
