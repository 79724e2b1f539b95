package resultparser

import (
	"strings"
	"testing"
)

// FuzzConsoleParser tests the serial-console parser with arbitrary input.
// Run: go test -fuzz=FuzzConsoleParser -fuzztime=30s ./internal/resultparser
func FuzzConsoleParser(f *testing.F) {
	seeds := []string{
		"PASS add.i4.Simple\nFAIL div.i4.ByZero: no trap raised\n",
		"ProtonOS booting...\nPASS ldarg.s.Index4\n",
		"",
		"\n",
		"PASS\nFAIL\n",
		"  PASS indented.Name  ",
		"FAIL name:",
		"FAIL name: " + strings.Repeat("x", 500),
		"\x00\x01PASS binary.Prefix",
		strings.Repeat("PASS a.b\n", 1000),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	parser := &ConsoleParser{}
	f.Fuzz(func(t *testing.T, input string) {
		// The parser should never panic on any input
		result := parser.Parse(strings.NewReader(input))

		if result.Parsed && len(result.Outcomes) == 0 {
			t.Error("Parsed=true with no outcomes")
		}
		for i, o := range result.Outcomes {
			if o.Name == "" {
				t.Errorf("outcome %d has empty name", i)
			}
			if len(o.Detail) > maxDetailLen {
				t.Errorf("outcome %d detail exceeds %d chars", i, maxDetailLen)
			}
		}
	})
}

// FuzzJSONLParser tests the JSONL parser with arbitrary input.
func FuzzJSONLParser(f *testing.F) {
	seeds := []string{
		`{"name": "add.i4.Simple", "passed": true}`,
		`{"name": "div.i4.ByZero", "passed": false, "detail": "no trap"}`,
		`{not json}`,
		`{"name": "x"}`,
		`{"passed": true}`,
		`[1, 2, 3]`,
		`null`,
		"",
		"\n\n\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	parser := &JSONLParser{}
	f.Fuzz(func(t *testing.T, input string) {
		result := parser.Parse(strings.NewReader(input))

		if result.Malformed < 0 {
			t.Errorf("negative malformed count: %d", result.Malformed)
		}
		if result.Parsed && len(result.Outcomes) == 0 {
			t.Error("Parsed=true with no outcomes")
		}
	})
}
