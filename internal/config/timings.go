package config

import "time"

// Timings are the durations that drive every simulated stage.
type Timings struct {
	// Intro is how long the intro animation plays before Upload.
	Intro time.Duration
	// UploadDelay is the "Processing your resume..." pause.
	UploadDelay time.Duration
	// LocationDelay is the "Processing..." pause after a location is entered.
	LocationDelay time.Duration
	// Analysis is the total analysis duration; Results follows.
	Analysis time.Duration
	// Step is the interval between analysis step highlights.
	Step time.Duration
	// Progress is the interval between 1% progress increments.
	Progress time.Duration
}

// DefaultTimings returns the stock flow pacing.
func DefaultTimings() Timings {
	return Timings{
		Intro:         3 * time.Second,
		UploadDelay:   1500 * time.Millisecond,
		LocationDelay: time.Second,
		Analysis:      8 * time.Second,
		Step:          2 * time.Second,
		Progress:      80 * time.Millisecond,
	}
}

// minTick keeps scaled tickers from spinning.
const minTick = time.Millisecond

// Scale divides every duration by speed. Non-positive speeds return t
// unchanged. Step and Progress never drop below one millisecond.
func (t Timings) Scale(speed float64) Timings {
	if speed <= 0 || speed == 1 {
		return t
	}
	div := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / speed)
	}
	atLeast := func(d time.Duration) time.Duration {
		if d < minTick {
			return minTick
		}
		return d
	}
	return Timings{
		Intro:         div(t.Intro),
		UploadDelay:   div(t.UploadDelay),
		LocationDelay: div(t.LocationDelay),
		Analysis:      div(t.Analysis),
		Step:          atLeast(div(t.Step)),
		Progress:      atLeast(div(t.Progress)),
	}
}
