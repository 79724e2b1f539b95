package cli

import (
	"github.com/ProtonOS/ProtonOS-sub011/internal/config"
	"github.com/ProtonOS/ProtonOS-sub011/internal/errors"
	"github.com/ProtonOS/ProtonOS-sub011/internal/report"
	"github.com/ProtonOS/ProtonOS-sub011/internal/suite"
	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// cmdSelfcheck runs the built-in self-check suites on the host runtime and
// summarizes their outcomes.
func cmdSelfcheck(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printSelfcheckUsage()
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	registry := suite.DefaultRegistry()
	names, err := resolveSuites(registry, args, cfg)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if len(names) == 0 {
		out.ErrorPrefix("no suites selected (all disabled in configuration)")
		return errors.ExitConfigError
	}

	tr := track.New()
	for _, name := range names {
		s, err := registry.Get(name)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitConfigError
		}
		out.SuiteStart(name)
		before := tr.Summary().Total
		s.Run(tr)
		out.Info("  %d probes recorded", tr.Summary().Total-before)
	}

	summary := tr.Summary()
	report.Render(out, "Self-Check Summary", summary, nil, renderOptions(cfg))

	if artifact := cfg.Report.Artifact; artifact != "" {
		if err := report.WriteYAML(artifact, cfg.Harness.Name, summary); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitRuntimeError
		}
		out.Info("wrote %s", artifact)
	}

	if summary.Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// resolveSuites decides which suites to run: the ones named on the command
// line, or every registered suite not disabled in the configuration.
func resolveSuites(registry *suite.Registry, args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		for _, name := range args {
			if _, err := registry.Get(name); err != nil {
				return nil, err
			}
		}
		return args, nil
	}

	var names []string
	for _, name := range registry.Names() {
		if enabled, ok := cfg.Suites[name]; ok && !enabled {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func printSelfcheckUsage() {
	out.HelpTitle("jittrack selfcheck - run built-in self-check suites")
	out.HelpSection("Usage:")
	out.HelpUsage("jittrack selfcheck [<suite>...]")
	out.HelpSection("Description:")
	out.Println("  Runs the named suites (or all enabled suites) in-process against the")
	out.Println("  host runtime, recording every probe through the outcome tracker. The")
	out.Println("  probes assert portable semantics and are expected to pass everywhere.")
	out.Println("")
	out.HelpSection("Examples:")
	out.HelpExample("jittrack selfcheck", "Run all enabled suites")
	out.HelpExample("jittrack selfcheck float", "Run only the IEEE-754 special-value probes")
	out.Println("")
}
