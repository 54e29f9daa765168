// Package cli renders the headless mode: a spinner while the flow plays and
// the final report on stdout.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplayFileSummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatEvent].
package cli
