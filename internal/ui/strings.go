package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// idButtonLabel returns the label of the ID column toggle.
func idButtonLabel(hidden bool) string {
	if hidden {
		return "Show ID Column"
	}
	return "Hide ID Column"
}
