package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvFile is the file loaded from the working directory before parsing.
var DotEnvFile = ".env"

// loadDotEnv loads DotEnvFile into the process environment. Variables that
// are already set win over the file, and a missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load(DotEnvFile)
}

// explicitFlags returns the names given on the command line. Explicit flags
// take precedence over RESUMESCAN_ variables.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// envOverride binds RESUMESCAN_<envKey> to the flags it stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// durationOverride builds the apply function of a duration flag.
func durationOverride(field func(*AppConfig) *time.Duration) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			*field(c) = parsed
		}
	}
}

var envOverrides = []envOverride{
	{"SPEED", []string{"speed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = parsed
		}
	}},

	{"INTRO", []string{"intro"}, durationOverride(func(c *AppConfig) *time.Duration { return &c.Intro })},
	{"UPLOAD_DELAY", []string{"upload-delay"}, durationOverride(func(c *AppConfig) *time.Duration { return &c.UploadDelay })},
	{"LOCATION_DELAY", []string{"location-delay"}, durationOverride(func(c *AppConfig) *time.Duration { return &c.LocationDelay })},
	{"ANALYSIS", []string{"analysis"}, durationOverride(func(c *AppConfig) *time.Duration { return &c.Analysis })},
	{"TIMEOUT", []string{"timeout"}, durationOverride(func(c *AppConfig) *time.Duration { return &c.Timeout })},

	{"FILE", []string{"file", "f"}, func(c *AppConfig, v string) {
		c.File = v
	}},
	{"LOCATION", []string{"location", "l"}, func(c *AppConfig, v string) {
		c.Location = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"LOG_FILE", []string{"log-file"}, func(c *AppConfig, v string) {
		c.LogFile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},

	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv keeps fallback for values it does not recognize.
func parseBoolEnv(val string, fallback bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// applyEnvOverrides fills every field whose flag was left at its default.
// A set NO_COLOR disables color whatever its value.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := explicitFlags(fs)
	for _, o := range envOverrides {
		given := false
		for _, name := range o.flags {
			given = given || explicit[name]
		}
		if given {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok && !explicit["no-color"] {
		config.NoColor = true
	}
}
