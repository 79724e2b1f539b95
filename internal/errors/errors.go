// Package errors provides structured error types and exit codes for jittrack.
package errors

import (
	"fmt"
)

// Exit codes reported by the jittrack CLI.
const (
	ExitSuccess      = 0 // Success, no failing outcomes
	ExitRuntimeError = 1 // Runtime error or at least one failing outcome
	ExitConfigError  = 2 // Configuration error (invalid jittrack.json, etc.)
	ExitInputError   = 3 // Input error (unreadable or unparsable result stream)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindInput
)

// HarnessError is the base error type for jittrack.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Source  string // Input file or suite name if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("[%s] %s", e.Source, e.Message)
	}
	return e.Message
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindInput:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *HarnessError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *HarnessError {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates a new input error.
func Input(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindInput,
		Message: message,
	}
}

// Inputf creates a new input error with formatting.
func Inputf(format string, args ...interface{}) *HarnessError {
	return Input(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// SourceError creates an input error attributed to a specific source.
func SourceError(source, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindInput,
		Source:  source,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *HarnessError {
	return &HarnessError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if he, ok := err.(*HarnessError); ok {
		return he.ExitCode()
	}
	return ExitRuntimeError
}
