package resultparser

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// outcomeEvent is one line of JSONL outcome output.
// Passed is a pointer so a record missing the field is rejected instead of
// silently counted as a failure.
type outcomeEvent struct {
	Name   *string `json:"name"`
	Passed *bool   `json:"passed"`
	Detail string  `json:"detail"`
}

// JSONLParser parses outcome streams with one JSON object per line:
//
//	{"name": "add.i4.Simple", "passed": true}
//	{"name": "div.i4.ByZero", "passed": false, "detail": "no trap raised"}
type JSONLParser struct{}

// Name returns the parser name.
func (p *JSONLParser) Name() string {
	return "jsonl"
}

// Parse extracts outcomes from a JSONL stream. Blank lines are skipped;
// lines that are not valid JSON or lack the name/passed fields are counted
// as malformed and do not abort the run.
func (p *JSONLParser) Parse(r io.Reader) Result {
	result := Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var event outcomeEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			result.Malformed++
			continue
		}
		if event.Name == nil || event.Passed == nil {
			result.Malformed++
			continue
		}

		result.Outcomes = append(result.Outcomes, track.Outcome{
			Name:   *event.Name,
			Passed: *event.Passed,
			Detail: truncateDetail(event.Detail),
		})
	}

	if len(result.Outcomes) > 0 {
		result.Parsed = true
	}
	return result
}
