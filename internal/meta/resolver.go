package meta

import "strings"

// firstNonEmpty returns the first option with visible content. The fallback
// chains for title, description, and image are all expressed through it so
// precedence stays declarative.
func firstNonEmpty(options ...string) string {
	for _, option := range options {
		if trimmed := strings.TrimSpace(option); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
