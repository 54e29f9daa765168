// Package config parses command-line flags and environment overrides into
// the application configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	apperrors "github.com/agbru/resumescan/internal/errors"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "RESUMESCAN_"

// Default flag values.
const (
	DefaultSpeed    = 1.0
	DefaultLogLevel = "info"
	DefaultTimeout  = 5 * time.Minute
)

// validLogLevels lists the values accepted by --log-level.
var validLogLevels = []string{"debug", "info", "warn", "error", "disabled"}

// AppConfig aggregates every configuration parameter of the application.
type AppConfig struct {
	// File is the résumé path for headless mode. Empty runs the TUI.
	File string
	// Location is the job search location for headless mode.
	Location string
	// Speed divides every stage timing; 2 plays the flow twice as fast.
	Speed float64
	// Intro, UploadDelay, LocationDelay and Analysis are the unscaled
	// stage durations.
	Intro         time.Duration
	UploadDelay   time.Duration
	LocationDelay time.Duration
	Analysis      time.Duration
	// Timeout bounds a headless run.
	Timeout  time.Duration
	NoColor  bool
	LogLevel string
	// LogFile receives logs in TUI mode, where stderr is owned by the screen.
	LogFile string
	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string
	Quiet       bool
	Completion  string
}

// Headless reports whether the flow runs without the interactive UI.
func (c AppConfig) Headless() bool { return c.File != "" }

// Timings returns the stage timings after applying Speed. The step and
// progress intervals follow Analysis, so the bar fills when analysis ends.
func (c AppConfig) Timings() Timings {
	t := DefaultTimings()
	t.Intro = c.Intro
	t.UploadDelay = c.UploadDelay
	t.LocationDelay = c.LocationDelay
	if c.Analysis > 0 && c.Analysis != t.Analysis {
		ratio := float64(c.Analysis) / float64(t.Analysis)
		t.Step = max(time.Duration(float64(t.Step)*ratio), minTick)
		t.Progress = max(time.Duration(float64(t.Progress)*ratio), minTick)
	}
	t.Analysis = c.Analysis
	return t.Scale(c.Speed)
}

// Validate checks cross-field constraints.
func (c AppConfig) Validate() error {
	if !(c.Speed > 0) || math.IsInf(c.Speed, 0) {
		return apperrors.NewConfigError("--speed must be a positive finite number, got %g", c.Speed)
	}
	for name, d := range map[string]time.Duration{
		"intro":          c.Intro,
		"upload-delay":   c.UploadDelay,
		"location-delay": c.LocationDelay,
		"analysis":       c.Analysis,
		"timeout":        c.Timeout,
	} {
		if d < 0 {
			return apperrors.NewConfigError("--%s must not be negative, got %s", name, d)
		}
	}
	if c.File != "" && strings.TrimSpace(c.Location) == "" {
		return apperrors.NewConfigError("--location is required with --file")
	}
	if c.File == "" && c.Location != "" {
		return apperrors.NewConfigError("--location requires --file")
	}
	level := strings.ToLower(c.LogLevel)
	valid := false
	for _, l := range validLogLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.NewConfigError("unknown log level %q (valid: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell", "ps":
	default:
		return apperrors.NewConfigError("unsupported shell %q for --completion", c.Completion)
	}
	return nil
}

// ParseConfig parses args into an AppConfig. A .env file in the working
// directory is loaded first, then flags are parsed, then RESUMESCAN_
// variables fill every flag that was not set explicitly.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	loadDotEnv()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	defaults := DefaultTimings()
	config := AppConfig{}
	fs.StringVar(&config.File, "file", "", "Résumé to analyze without the interactive UI (PDF or DOCX).")
	fs.StringVar(&config.File, "f", "", "Shorthand for --file.")
	fs.StringVar(&config.Location, "location", "", "Job search location for headless mode.")
	fs.StringVar(&config.Location, "l", "", "Shorthand for --location.")
	fs.Float64Var(&config.Speed, "speed", DefaultSpeed, "Playback speed multiplier for every stage timer.")
	fs.DurationVar(&config.Intro, "intro", defaults.Intro, "Duration of the intro animation.")
	fs.DurationVar(&config.UploadDelay, "upload-delay", defaults.UploadDelay, "Simulated upload processing time.")
	fs.DurationVar(&config.LocationDelay, "location-delay", defaults.LocationDelay, "Simulated location processing time.")
	fs.DurationVar(&config.Analysis, "analysis", defaults.Analysis, "Duration of the simulated analysis.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of a headless run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: "+strings.Join(validLogLevels, ", ")+".")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file (the TUI discards logs otherwise).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Headless mode: print only the report.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh, fish or powershell.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}
