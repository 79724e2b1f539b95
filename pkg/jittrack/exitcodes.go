// Package jittrack provides public constants for external tools integrating
// with the jittrack CLI.
package jittrack

// Exit codes returned by the jittrack CLI.
// These constants allow external tools (CI scripts, boot harness wrappers)
// to check exit codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed with no failing outcomes.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure or at least one failing outcome.
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid jittrack.json,
	// unknown format, unknown suite, etc.).
	ExitConfigError = 2

	// ExitInputError indicates an input error (unreadable file or a stream
	// with no parsable outcome records).
	ExitInputError = 3
)
