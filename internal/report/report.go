// Package report renders outcome summaries for the CLI and exports
// machine-readable artifacts.
package report

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ProtonOS/ProtonOS-sub011/internal/output"
	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// Options controls summary rendering.
type Options struct {
	// ShowCategories includes the per-category breakdown table.
	ShowCategories bool
	// MaxFailures limits how many failing names are listed. 0 means unlimited.
	MaxFailures int
}

// Render writes a human-readable summary to the writer.
// details maps failing test names to their recorded failure detail, if any.
func Render(w *output.Writer, title string, s track.Summary, details map[string]string, opts Options) {
	w.SummaryHeader(title)
	w.SummaryItem("Total", strconv.Itoa(s.Total))
	w.SummaryPassed("Passed", strconv.Itoa(s.Passed))
	w.SummaryFailed("Failed", strconv.Itoa(s.Failed))

	if opts.ShowCategories && len(s.Categories) > 0 {
		w.Println("")
		w.SummarySectionLabel("Categories:")
		renderCategories(w, s.Categories)
	}

	if len(s.FailingNames) > 0 {
		w.Println("")
		w.SummarySectionLabel("Failing tests:")
		renderFailures(w, s.FailingNames, details, opts.MaxFailures)
	}

	if s.Failed == 0 {
		w.FinalSuccess("all %d tests passed", s.Total)
	} else {
		w.FinalFailure("%d of %d tests failed", s.Failed, s.Total)
	}
}

func renderCategories(w *output.Writer, categories map[string]track.Counts) {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		c := categories[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Passed),
			strconv.Itoa(c.Failed),
		})
	}
	w.Table([]string{"Category", "Total", "Passed", "Failed"}, rows)
}

func renderFailures(w *output.Writer, names []string, details map[string]string, limit int) {
	shown := len(names)
	if limit > 0 && shown > limit {
		shown = limit
	}
	for _, name := range names[:shown] {
		if detail := details[name]; detail != "" {
			w.Println("  - %s: %s", name, detail)
		} else {
			w.Println("  - %s", name)
		}
	}
	if remaining := len(names) - shown; remaining > 0 {
		w.Println("  ... and %d more", remaining)
	}
}

// FailureDetails builds a name-to-detail map from parsed outcomes.
// The first non-empty detail per failing name wins.
func FailureDetails(outcomes []track.Outcome) map[string]string {
	details := make(map[string]string)
	for _, o := range outcomes {
		if o.Passed || o.Detail == "" {
			continue
		}
		if _, ok := details[o.Name]; !ok {
			details[o.Name] = o.Detail
		}
	}
	return details
}

// Artifact is the YAML summary document written by WriteYAML.
type Artifact struct {
	Harness string        `yaml:"harness,omitempty"`
	Summary track.Summary `yaml:"summary"`
}

// WriteYAML writes the summary as a YAML artifact to the given path.
func WriteYAML(path, harness string, s track.Summary) error {
	data, err := yaml.Marshal(Artifact{Harness: harness, Summary: s})
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary artifact: %w", err)
	}
	return nil
}
