// Package cli provides command-line interface functionality for jittrack.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ProtonOS/ProtonOS-sub011/internal/config"
	"github.com/ProtonOS/ProtonOS-sub011/internal/errors"
	"github.com/ProtonOS/ProtonOS-sub011/internal/output"
)

// Version is set at build time.
var Version = "dev"

// DefaultConfigFile is the config file looked up in the working directory
// when --config is not given.
const DefaultConfigFile = "jittrack.json"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 18 // Width for command names like "summary <file|->"
	helpFlagWidth    = 16 // Width for flags like "--config=<path>"
)

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("jittrack %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "summary":
		return cmdSummary(cmdArgs, opts)
	case "selfcheck":
		return cmdSelfcheck(cmdArgs, opts)
	case "suites":
		return cmdSuites(cmdArgs)
	case "config":
		return cmdConfig(cmdArgs, opts)
	case "version":
		fmt.Printf("jittrack %s\n", Version)
		return 0
	default:
		out.ErrorPrefix("unknown command %q\n  run 'jittrack help' for usage", cmd)
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	NoColor    bool
	ConfigPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags may
// appear anywhere in the argument list, including after the command name.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	applyOptionsToOutput(opts)
	return opts, remaining, nil
}

// applyOptionsToOutput configures the shared writer from global flags.
func applyOptionsToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}
}

// loadConfig resolves the effective configuration. An explicit --config path
// must exist; otherwise jittrack.json in the working directory is used when
// present, and built-in defaults when not. Warnings are printed as they are
// discovered.
func loadConfig(opts *GlobalOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return config.Default(), nil
		}
		path = DefaultConfigFile
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		return nil, errors.Configf("invalid configuration %s: %v", path, err)
	}

	applyReportConfig(cfg)
	return cfg, nil
}

// applyReportConfig applies config-level report settings to the shared
// writer. Explicit flags win over the config file.
func applyReportConfig(cfg *config.Config) {
	if cfg.Report == nil {
		return
	}
	if cfg.Report.Quiet {
		out.SetQuiet(true)
	}
	switch cfg.Report.Color {
	case "always":
		out.SetColor(true)
	case "never":
		out.SetColor(false)
	}
}

func printUsage() {
	w := output.New()

	w.HelpTitle("jittrack - JIT conformance outcome recorder")

	w.HelpSection("Usage:")
	w.HelpUsage("jittrack <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("summary <file|->", "Summarize an outcome stream from a file or stdin", helpCommandWidth)
	w.HelpCommand("selfcheck [suite]", "Run built-in self-check suites on the host runtime", helpCommandWidth)
	w.HelpCommand("suites", "List available self-check suites", helpCommandWidth)
	w.HelpCommand("config [path]", "Validate a config file and show effective values", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)

	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidth)
	w.HelpFlag("--no-color", "Disable ANSI colors", helpFlagWidth)
	w.HelpFlag("--config=<path>", "Use an explicit config file", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("cat serial.log | jittrack summary -", "Summarize serial console output from stdin")
	w.HelpExample("jittrack summary results.jsonl --format jsonl", "Summarize a JSON lines capture")
	w.HelpExample("jittrack summary boot.log --out summary.yaml", "Also write a YAML artifact")
	w.HelpExample("jittrack selfcheck float", "Run the IEEE-754 special-value probes")
	w.Println("")
}
