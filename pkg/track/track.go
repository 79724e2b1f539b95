// Package track provides the outcome recorder shared by all JIT conformance
// suites. Every assertion reports a dotted hierarchical name and a boolean
// result; the tracker aggregates them into global and per-category counters
// and keeps the names of failing assertions for diagnosis.
package track

import (
	"strings"
	"sync"
)

// Outcome is one recorded assertion result.
type Outcome struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"` // optional failure detail from the producer
}

// Counts holds aggregate pass/fail counters. Total == Passed + Failed.
type Counts struct {
	Total  int `json:"total" yaml:"total"`
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
}

// Summary is a point-in-time view of everything recorded since the last
// Reset. FailingNames preserves record order and keeps duplicates.
type Summary struct {
	Counts       `yaml:",inline"`
	Categories   map[string]Counts `json:"categories" yaml:"categories"`
	FailingNames []string          `json:"failing_names,omitempty" yaml:"failing_names,omitempty"`
}

// Tracker accumulates outcomes. The zero value is not ready for use;
// construct with New. All methods are safe for concurrent use.
//
// Per-record cost is one map lookup-or-insert plus integer increments;
// passing outcomes are counted but not retained individually, so memory
// stays proportional to the number of categories plus actual failures.
type Tracker struct {
	mu         sync.Mutex
	global     Counts
	categories map[string]Counts
	failing    []string
}

// New creates an empty Tracker. One tracker corresponds to one run; the
// driver constructs it and passes it to whatever produces outcomes.
func New() *Tracker {
	return &Tracker{
		categories: make(map[string]Counts),
	}
}

// CategoryOf derives the category of a test name: the name with its last
// dot-separated segment removed. A name without a dot is its own category,
// as is the empty string. Trailing-dot names like "add." categorize under
// "add" (the final segment is empty); "a..b" categorizes under "a.".
func CategoryOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name
	}
	return name[:idx]
}

// Record registers one outcome. Duplicate names are counted again, never
// deduplicated: the corpus occasionally records the same logical case from
// two test bodies and expects both in the totals. Record accepts any name,
// including the empty string; a malformed name must never abort a run.
func (t *Tracker) Record(name string, passed bool) {
	category := CategoryOf(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.global.Total++
	c := t.categories[category]
	c.Total++
	if passed {
		t.global.Passed++
		c.Passed++
	} else {
		t.global.Failed++
		c.Failed++
		t.failing = append(t.failing, name)
	}
	t.categories[category] = c
}

// RecordOutcome registers a parsed outcome. The detail, if any, is the
// producer's concern; only name and result feed the counters.
func (t *Tracker) RecordOutcome(o Outcome) {
	t.Record(o.Name, o.Passed)
}

// Summary returns the aggregate view of all outcomes recorded so far. It
// may be called mid-run; the returned value is a snapshot and does not
// alias tracker state.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Counts:     t.global,
		Categories: make(map[string]Counts, len(t.categories)),
	}
	for name, c := range t.categories {
		s.Categories[name] = c
	}
	if len(t.failing) > 0 {
		s.FailingNames = make([]string, len(t.failing))
		copy(s.FailingNames, t.failing)
	}
	return s
}

// Reset clears all counters and retained failures, returning the tracker
// to its freshly constructed state for the next independent run.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.global = Counts{}
	t.categories = make(map[string]Counts)
	t.failing = nil
}
