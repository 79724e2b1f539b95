package cli

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ProtonOS/ProtonOS-sub011/internal/suite"
)

// cmdSuites lists the registered self-check suites.
func cmdSuites(args []string) int {
	if wantsHelp(args) {
		printSuitesUsage()
		return 0
	}

	registry := suite.DefaultRegistry()
	caser := cases.Title(language.English)

	var rows [][]string
	for _, name := range registry.Names() {
		s, err := registry.Get(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{name, caser.String(name), s.Description})
	}

	out.Table([]string{"Suite", "Title", "Description"}, rows)
	return 0
}

func printSuitesUsage() {
	out.HelpTitle("jittrack suites - list available self-check suites")
	out.HelpSection("Usage:")
	out.HelpUsage("jittrack suites")
	out.Println("")
}
