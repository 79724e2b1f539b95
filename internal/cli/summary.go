package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ProtonOS/ProtonOS-sub011/internal/config"
	"github.com/ProtonOS/ProtonOS-sub011/internal/errors"
	"github.com/ProtonOS/ProtonOS-sub011/internal/report"
	"github.com/ProtonOS/ProtonOS-sub011/internal/resultparser"
	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// summaryOptions holds flags specific to the summary command.
type summaryOptions struct {
	format string // input format override
	out    string // YAML artifact path override
	source string // input file path, or "-" for stdin
}

// cmdSummary ingests an outcome stream and prints an aggregate summary.
func cmdSummary(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printSummaryUsage()
		return 0
	}

	sumOpts, err := parseSummaryArgs(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	format := cfg.Input.Format
	if sumOpts.format != "" {
		format = sumOpts.format
	}

	registry := resultparser.NewRegistry()
	parser := registry.GetParser(format)
	if parser == nil {
		out.ErrorPrefix("unknown input format %q\n  valid formats: %s",
			format, strings.Join(registry.Formats(), ", "))
		return errors.ExitConfigError
	}

	input, closeInput, err := openInput(sumOpts.source)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitInputError
	}
	defer closeInput()

	result := parser.Parse(input)
	if result.Malformed > 0 {
		out.Warning("%d malformed line(s) ignored", result.Malformed)
	}
	if !result.Parsed {
		out.ErrorPrefix("no outcomes found in input")
		out.Errorln("hint: expected %q records (PASS/FAIL lines or JSON lines)", format)
		return errors.ExitInputError
	}

	tr := track.New()
	result.Feed(tr)
	summary := tr.Summary()

	report.Render(out, "Outcome Summary", summary, report.FailureDetails(result.Outcomes), renderOptions(cfg))

	artifact := cfg.Report.Artifact
	if sumOpts.out != "" {
		artifact = sumOpts.out
	}
	if artifact != "" {
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

// parseSummaryArgs extracts summary flags and the input source.
func parseSummaryArgs(args []string) (*summaryOptions, error) {
	sumOpts := &summaryOptions{source: "-"}
	sourceSet := false

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--format":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--format requires a value")
			}
			sumOpts.format = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--format="):
			sumOpts.format = strings.TrimPrefix(arg, "--format=")
			i++
		case arg == "--out":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--out requires a value")
			}
			sumOpts.out = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--out="):
			sumOpts.out = strings.TrimPrefix(arg, "--out=")
			i++
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, fmt.Errorf("unknown flag %q for summary", arg)
		default:
			if sourceSet {
				return nil, fmt.Errorf("summary takes at most one input file")
			}
			sumOpts.source = arg
			sourceSet = true
			i++
		}
	}

	return sumOpts, nil
}

// openInput opens the named file, or returns stdin for "-".
func openInput(source string) (io.Reader, func(), error) {
	if source == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open input: %v", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// renderOptions derives report options from the effective configuration.
func renderOptions(cfg *config.Config) report.Options {
	opts := report.Options{ShowCategories: true}
	if cfg.Report != nil {
		if cfg.Report.ShowCategories != nil {
			opts.ShowCategories = *cfg.Report.ShowCategories
		}
		opts.MaxFailures = cfg.Report.MaxFailures
	}
	return opts
}

func printSummaryUsage() {
	out.HelpTitle("jittrack summary - summarize an outcome stream")
	out.HelpSection("Usage:")
	out.HelpUsage("jittrack summary [<file>|-] [--format console|jsonl] [--out <file>]")
	out.HelpSection("Description:")
	out.Println("  Reads PASS/FAIL records from a serial console capture or a JSON lines")
	out.Println("  stream, aggregates them per category, and prints a summary. Exits")
	out.Println("  non-zero when any recorded outcome failed.")
	out.Println("")
	out.HelpSection("Examples:")
	out.HelpExample("cat serial.log | jittrack summary -", "Summarize from stdin")
	out.HelpExample("jittrack summary results.jsonl --format jsonl", "Summarize a JSON lines capture")
	out.HelpExample("jittrack summary boot.log --out summary.yaml", "Also write a YAML artifact")
	out.Println("")
}
