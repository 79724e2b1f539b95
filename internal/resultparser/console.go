package resultparser

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// Static regex for serial-console outcome lines.
// Compiled once at package init for performance.
//
// The test image prints one line per assertion:
//
//	PASS add.i4.Simple
//	FAIL conv.ovf.i1.OutOfRange: expected overflow trap
//
// Boot noise, kernel logging, and blank lines are interleaved freely and
// are ignored.
var consoleLineRegex = regexp.MustCompile(`^\s*(PASS|FAIL)\s+(\S+?)\s*(?::\s*(.*))?$`)

// ConsoleParser parses serial-console output from a ProtonOS test run.
type ConsoleParser struct{}

// Name returns the parser name.
func (p *ConsoleParser) Name() string {
	return "console"
}

// Parse extracts outcomes from console output. Lines that do not match the
// outcome shape are ignored rather than counted as malformed: the serial
// stream carries arbitrary non-test output.
func (p *ConsoleParser) Parse(r io.Reader) Result {
	result := Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		match := consoleLineRegex.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		o := track.Outcome{
			Name:   match[2],
			Passed: match[1] == "PASS",
		}
		if !o.Passed {
			o.Detail = truncateDetail(strings.TrimSpace(match[3]))
		}
		result.Outcomes = append(result.Outcomes, o)
	}

	if len(result.Outcomes) > 0 {
		result.Parsed = true
	}
	return result
}

// Truncate details to keep summary output readable. 80 chars is a common
// terminal width that avoids excessive wrapping.
const maxDetailLen = 80

func truncateDetail(detail string) string {
	if len(detail) > maxDetailLen {
		return detail[:maxDetailLen-3] + "..."
	}
	return detail
}
