// Package resultparser extracts recorded outcomes from the streams the
// ProtonOS test image produces: serial-console text or JSON lines.
package resultparser

import (
	"io"

	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// Result holds the outcomes extracted from one input stream.
type Result struct {
	Outcomes  []track.Outcome
	Malformed int  // lines that looked like records but could not be decoded
	Parsed    bool // true if at least one outcome was successfully extracted
}

// Add appends another Result to this one, aggregating outcomes.
// The Parsed flag uses "sticky true" semantics: if any added Result has
// Parsed=true, the aggregate will have Parsed=true.
func (r *Result) Add(other *Result) {
	if other == nil {
		return
	}
	r.Outcomes = append(r.Outcomes, other.Outcomes...)
	r.Malformed += other.Malformed
	if other.Parsed {
		r.Parsed = true
	}
}

// Feed records every extracted outcome into the tracker, in stream order.
func (r *Result) Feed(tr *track.Tracker) {
	for _, o := range r.Outcomes {
		tr.RecordOutcome(o)
	}
}

// Parser defines the interface for outcome stream parsers.
type Parser interface {
	// Parse extracts outcomes from the stream.
	Parse(r io.Reader) Result
	// Name returns the name of the parser.
	Name() string
}
