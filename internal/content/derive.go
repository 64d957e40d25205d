package content

import (
	"strings"
)

const ellipsis = "..."

// CountWords reports the whitespace-separated word count of the Markdown body.
func CountWords(body []byte) int {
	return len(strings.Fields(string(body)))
}

// ReadingTime estimates minutes-to-read as ceil(words/perMinute), clamped to a
// minimum of one minute so short posts never report zero.
func ReadingTime(words, perMinute int) int {
	if perMinute <= 0 {
		perMinute = 200
	}
	if words <= 0 {
		return 1
	}
	minutes := (words + perMinute - 1) / perMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// FirstParagraph returns the first prose paragraph of the Markdown body with
// internal newlines collapsed to spaces. Headings and code fences are skipped
// so the excerpt reads as running text.
func FirstParagraph(body []byte) string {
	for _, block := range strings.Split(string(body), "\n\n") {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "```") {
			continue
		}
		return strings.Join(strings.Fields(trimmed), " ")
	}
	return ""
}

// Excerpt truncates text to limit characters, appending an ellipsis marker
// when truncation occurs. The cut lands on the exact character boundary even
// mid-word; callers relying on the historical behaviour expect that.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}
