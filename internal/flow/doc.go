// Package flow implements the stage controller of the résumé analysis flow.
//
// The flow is a closed, forward-only state machine:
//
//	Intro → Upload → Location → Analysis → Results
//
// A Controller owns the current Stage and the Session (selected file and
// location). Presentation layers call its operations when a stage completes
// and subscribe as observers to re-render on every stage change.
package flow
