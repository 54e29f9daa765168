package flow

// AnalysisSteps are the labels highlighted in turn during the Analysis stage.
var AnalysisSteps = []string{
	"Parsing resume content...",
	"Extracting skills and experience...",
	"Matching job categories...",
	"Analyzing market trends...",
}

// QuickLocations are the predefined values offered at the Location stage.
var QuickLocations = []string{
	"San Francisco, CA",
	"New York, NY",
	"Austin, TX",
	"Seattle, WA",
}

// StepAt returns the analysis step highlighted after ticks step intervals,
// clamped at the last step.
func StepAt(ticks int) int {
	if ticks < 0 {
		return 0
	}
	return min(ticks, len(AnalysisSteps)-1)
}

// PercentAt returns the progress after ticks increments, clamped at 100.
func PercentAt(ticks int) int {
	return max(0, min(ticks, 100))
}
