// Package orchestration plays the résumé flow without the interactive UI.
// It drives a flow.Controller through every stage with real timers and
// streams progress events to a ProgressReporter, decoupling the flow from
// how progress is displayed.
package orchestration
