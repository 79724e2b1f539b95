// Package config provides configuration loading and validation for jittrack.json.
package config

// Config represents the complete jittrack.json configuration.
type Config struct {
	Harness   HarnessConfig    `json:"harness"`
	Tolerance *ToleranceConfig `json:"tolerance,omitempty"`
	Input     *InputConfig     `json:"input,omitempty"`
	Report    *ReportConfig    `json:"report,omitempty"`
	Suites    map[string]bool  `json:"suites,omitempty"` // self-check suites to enable/disable by name
}

// HarnessConfig contains harness metadata.
type HarnessConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToleranceConfig configures the approximate-equality defaults used by the
// self-check suites and reported in the summary.
type ToleranceConfig struct {
	// Double is the absolute tolerance for float64 comparisons.
	Double *float64 `json:"double,omitempty"`
	// Single is the absolute tolerance for float32 comparisons.
	Single *float64 `json:"single,omitempty"`
	// Categories overrides the double-precision tolerance per category,
	// e.g. {"mul.r8": 1e-8}.
	Categories map[string]float64 `json:"categories,omitempty"`
}

// InputConfig configures outcome stream ingestion.
type InputConfig struct {
	Format string `json:"format,omitempty"` // "console" or "jsonl"
}

// ReportConfig configures summary rendering.
type ReportConfig struct {
	Color          string `json:"color,omitempty"` // "auto", "always", "never"
	Quiet          bool   `json:"quiet,omitempty"`
	ShowCategories *bool  `json:"show_categories,omitempty"`
	MaxFailures    int    `json:"max_failures,omitempty"` // 0 means unlimited
	Artifact       string `json:"artifact,omitempty"`     // YAML summary output path
}
