package config

import "github.com/ProtonOS/ProtonOS-sub011/pkg/assert"

// Default configuration values.
const (
	DefaultInputFormat = "console"
	DefaultColorMode   = "auto"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyToleranceDefaults(cfg)
	applyInputDefaults(cfg)
	applyReportDefaults(cfg)
}

func applyToleranceDefaults(cfg *Config) {
	if cfg.Tolerance == nil {
		cfg.Tolerance = &ToleranceConfig{}
	}
	if cfg.Tolerance.Double == nil {
		v := float64(assert.DefaultTolerance)
		cfg.Tolerance.Double = &v
	}
	if cfg.Tolerance.Single == nil {
		v := float64(assert.DefaultTolerance32)
		cfg.Tolerance.Single = &v
	}
}

func applyInputDefaults(cfg *Config) {
	if cfg.Input == nil {
		cfg.Input = &InputConfig{}
	}
	if cfg.Input.Format == "" {
		cfg.Input.Format = DefaultInputFormat
	}
}

func applyReportDefaults(cfg *Config) {
	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = DefaultColorMode
	}
	if cfg.Report.ShowCategories == nil {
		v := true
		cfg.Report.ShowCategories = &v
	}
}

// DoubleTolerance returns the effective double-precision tolerance for a
// category, honoring per-category overrides.
func (c *ToleranceConfig) DoubleTolerance(category string) float64 {
	if c == nil {
		return assert.DefaultTolerance
	}
	if v, ok := c.Categories[category]; ok {
		return v
	}
	if c.Double != nil {
		return *c.Double
	}
	return assert.DefaultTolerance
}
