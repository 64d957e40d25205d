package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across calls without additional locking
// so a single parser instance can serve every content load.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions     []string
	HighlightTheme string
	Sanitize       bool
	HardWraps      bool
	SafeMode       bool
}
