package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ProtonOS/ProtonOS-sub011/internal/config"
	"github.com/ProtonOS/ProtonOS-sub011/internal/errors"
	"github.com/ProtonOS/ProtonOS-sub011/internal/schema"
)

// cmdConfig validates a configuration file and prints the effective values.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printConfigUsage()
		return 0
	}
	if len(args) > 1 {
		out.ErrorPrefix("config takes at most one path")
		return errors.ExitConfigError
	}

	path := opts.ConfigPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		out.ErrorPrefix("cannot read config: %v", err)
		return errors.ExitConfigError
	}

	if err := schema.ValidateConfig(data); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		out.ErrorPrefix("invalid configuration %s: %v", path, err)
		return errors.ExitConfigError
	}

	printEffectiveConfig(path, cfg)
	return errors.ExitSuccess
}

// printEffectiveConfig shows the configuration after defaults are applied.
func printEffectiveConfig(path string, cfg *config.Config) {
	out.SummaryHeader("Effective Configuration")
	out.SummaryItem("File", path)
	out.SummaryItem("Harness", cfg.Harness.Name)
	if cfg.Harness.Description != "" {
		out.SummaryItem("Description", cfg.Harness.Description)
	}
	out.SummaryItem("Input format", cfg.Input.Format)
	out.SummaryItem("Tolerance (double)", fmt.Sprintf("%g", *cfg.Tolerance.Double))
	out.SummaryItem("Tolerance (single)", fmt.Sprintf("%g", *cfg.Tolerance.Single))
	categories := make([]string, 0, len(cfg.Tolerance.Categories))
	for category := range cfg.Tolerance.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		out.SummaryItem("Tolerance ("+category+")", fmt.Sprintf("%g", cfg.Tolerance.Categories[category]))
	}
	out.SummaryItem("Color", cfg.Report.Color)
	out.SummaryItem("Show categories", fmt.Sprintf("%t", *cfg.Report.ShowCategories))
	if cfg.Report.MaxFailures > 0 {
		out.SummaryItem("Max failures listed", fmt.Sprintf("%d", cfg.Report.MaxFailures))
	}
	if cfg.Report.Artifact != "" {
		out.SummaryItem("Artifact", cfg.Report.Artifact)
	}
	if len(cfg.Suites) > 0 {
		var disabled []string
		for name, enabled := range cfg.Suites {
			if !enabled {
				disabled = append(disabled, name)
			}
		}
		if len(disabled) > 0 {
			sort.Strings(disabled)
			out.SummaryItem("Disabled suites", strings.Join(disabled, ", "))
		}
	}
	out.Println("")
}

func printConfigUsage() {
	out.HelpTitle("jittrack config - validate configuration")
	out.HelpSection("Usage:")
	out.HelpUsage("jittrack config [<path>]")
	out.HelpSection("Description:")
	out.Println("  Validates the config file against the embedded JSON schema, reports")
	out.Println("  unknown fields and suspicious values, and prints the effective")
	out.Println("  configuration after defaults are applied.")
	out.Println("")
	out.HelpSection("Examples:")
	out.HelpExample("jittrack config", "Validate ./jittrack.json")
	out.HelpExample("jittrack config ci/jittrack.json", "Validate an explicit file")
	out.Println("")
}
