package resultparser

import "strings"

// DefaultFormat is used when the caller does not name an input format.
const DefaultFormat = "console"

// Registry maps input format identifiers to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry with all built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	consoleParser := &ConsoleParser{}
	jsonlParser := &JSONLParser{}

	// Map format identifiers to parsers
	r.parsers["console"] = consoleParser
	r.parsers["serial"] = consoleParser
	r.parsers["text"] = consoleParser
	r.parsers["jsonl"] = jsonlParser
	r.parsers["json"] = jsonlParser

	return r
}

// GetParser returns a parser for the given format identifier.
// Returns nil if no parser is found.
func (r *Registry) GetParser(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the canonical format identifiers, one per parser.
func (r *Registry) Formats() []string {
	return []string{"console", "jsonl"}
}

// RegisterParser adds a custom parser for a format.
func (r *Registry) RegisterParser(format string, parser Parser) {
	r.parsers[strings.ToLower(format)] = parser
}
