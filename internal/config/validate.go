package config

import (
	"fmt"
	"regexp"
)

// Harness name: must start with a lowercase letter, may contain lowercase,
// digits, hyphens. Hyphens must not be consecutive or trailing.
var harnessNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for
// non-fatal issues (e.g. suspiciously loose tolerances).
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateHarness(cfg); err != nil {
		return nil, err
	}

	toleranceWarnings, err := validateTolerance(cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, toleranceWarnings...)

	if err := validateInput(cfg.Input); err != nil {
		return warnings, err
	}

	if err := validateReport(cfg.Report); err != nil {
		return warnings, err
	}

	return warnings, nil
}

func validateHarness(cfg *Config) error {
	if cfg.Harness.Name == "" {
		return &ValidationError{Field: "harness.name", Message: "is required"}
	}
	if !harnessNamePattern.MatchString(cfg.Harness.Name) {
		return &ValidationError{
			Field:   "harness.name",
			Message: "must match pattern ^[a-z][a-z0-9]*(-[a-z0-9]+)*$ (lowercase letters, digits, hyphens)",
		}
	}
	return nil
}

// Tolerances looser than this trigger a warning: they would mask real
// regressions in double-precision opcode results.
const looseToleranceThreshold = 1e-3

func validateTolerance(tc *ToleranceConfig) ([]string, error) {
	if tc == nil {
		return nil, nil
	}

	var warnings []string

	if tc.Double != nil {
		if *tc.Double < 0 {
			return nil, &ValidationError{Field: "tolerance.double", Message: "must be non-negative"}
		}
		if *tc.Double > looseToleranceThreshold {
			warnings = append(warnings, fmt.Sprintf("tolerance.double %g is loose; regressions below it will pass unnoticed", *tc.Double))
		}
	}
	if tc.Single != nil && *tc.Single < 0 {
		return nil, &ValidationError{Field: "tolerance.single", Message: "must be non-negative"}
	}
	for category, v := range tc.Categories {
		if v < 0 {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("tolerance.categories.%s", category),
				Message: "must be non-negative",
			}
		}
	}

	return warnings, nil
}

func validateInput(ic *InputConfig) error {
	if ic == nil {
		return nil
	}
	switch ic.Format {
	case "", "console", "serial", "text", "jsonl", "json":
		return nil
	default:
		return &ValidationError{
			Field:   "input.format",
			Message: fmt.Sprintf("unknown format %q (must be console, serial, text, jsonl, or json)", ic.Format),
		}
	}
}

func validateReport(rc *ReportConfig) error {
	if rc == nil {
		return nil
	}
	switch rc.Color {
	case "", "auto", "always", "never":
		// valid
	default:
		return &ValidationError{
			Field:   "report.color",
			Message: fmt.Sprintf("must be %q, %q, or %q", "auto", "always", "never"),
		}
	}
	if rc.MaxFailures < 0 {
		return &ValidationError{Field: "report.max_failures", Message: "must be non-negative"}
	}
	return nil
}
