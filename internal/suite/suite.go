// Package suite provides the built-in self-check suites. Each suite runs
// in-process against the host runtime and records outcomes through a Tracker,
// the same way the external conformance corpus reports over the serial
// console. They double as a smoke test for the recorder and the oracle.
package suite

import (
	"fmt"
	"sort"

	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// Suite is a named group of self-check probes.
type Suite struct {
	Name        string
	Description string
	Run         func(tr *track.Tracker)
}

// Registry maps suite names to suites.
type Registry struct {
	suites map[string]Suite
}

// NewRegistry creates an empty suite registry.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]Suite)}
}

// Register adds a suite to the registry, replacing any existing suite with
// the same name.
func (r *Registry) Register(s Suite) {
	r.suites[s.Name] = s
}

// Get returns the suite registered under name.
func (r *Registry) Get(name string) (Suite, error) {
	s, ok := r.suites[name]
	if !ok {
		return Suite{}, fmt.Errorf("unknown suite %q (available: %v)", name, r.Names())
	}
	return s, nil
}

// Names returns the registered suite names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in suites registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Suite{
		Name:        "arith",
		Description: "integer and floating-point arithmetic probes",
		Run:         runArith,
	})
	r.Register(Suite{
		Name:        "convert",
		Description: "numeric conversion probes",
		Run:         runConvert,
	})
	r.Register(Suite{
		Name:        "float",
		Description: "IEEE-754 special-value probes",
		Run:         runFloat,
	})
	return r
}
