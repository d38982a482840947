// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForMissingTitle returns a hint for records without a title field.
// The record index is 0-based; the hint reports it 1-based as users count.
func ForMissingTitle(index int, delimiter string) string {
	return formatHints([]string{
		fmt.Sprintf("record %d has no title: 'Name' or title: \"Name\" line", index+1),
		fmt.Sprintf("check for a stray %s at the start or end of the export", delimiter),
		"Logseq exports write title:: Name and are not supported; export with the default or Obsidian target",
	})
}

// ForInvalidTitle returns a hint for titles that sanitize to nothing.
func ForInvalidTitle(title string) string {
	return format(fmt.Sprintf("title %q contains only characters that cannot appear in a file name", title))
}

// ForInputNotFound returns a hint when the source document cannot be opened.
func ForInputNotFound(path string) string {
	return format(fmt.Sprintf("export the tiddlers to %s or pass --input", path))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when one was searched, a per-user location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-tiddlersplit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
