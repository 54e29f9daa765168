package flow

// Stage is one discrete phase of the flow. Stages are totally ordered by
// their numeric value.
type Stage int

const (
	StageIntro Stage = iota
	StageUpload
	StageLocation
	StageAnalysis
	StageResults
)

// Stages lists every stage in flow order.
var Stages = []Stage{StageIntro, StageUpload, StageLocation, StageAnalysis, StageResults}

var stageNames = [...]string{"Intro", "Upload", "Location", "Analysis", "Results"}

// transitions is the forward-only transition table. Results has no entry.
var transitions = map[Stage]Stage{
	StageIntro:    StageUpload,
	StageUpload:   StageLocation,
	StageLocation: StageAnalysis,
	StageAnalysis: StageResults,
}

// String returns the stage name.
func (s Stage) String() string {
	if s < StageIntro || s > StageResults {
		return "Unknown"
	}
	return stageNames[s]
}

// Next returns the stage that follows s, or false if s is terminal.
func (s Stage) Next() (Stage, bool) {
	next, ok := transitions[s]
	return next, ok
}

// Terminal reports whether no transition leaves s.
func (s Stage) Terminal() bool {
	_, ok := transitions[s]
	return !ok
}

// Before reports whether s comes strictly earlier in the flow than other.
func (s Stage) Before(other Stage) bool { return s < other }
