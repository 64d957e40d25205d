package runtimeconfig

import (
	"errors"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrSiteNameRequired = errors.New("folio config: site name is required")
var ErrSiteBaseURLRequired = errors.New("folio config: site base URL is required")
var ErrContentDirRequired = errors.New("folio config: content directory is required")
var ErrExcerptLengthInvalid = errors.New("folio config: excerpt length must be positive")
var ErrWordsPerMinuteInvalid = errors.New("folio config: words per minute must be positive")
var ErrLoggingProviderRequired = errors.New("folio config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("folio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("folio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("folio config: logging format is invalid")
var ErrFeedLimitInvalid = errors.New("folio config: feed item limit must be zero or positive")

// Config aggregates site identity and module behaviour for the folio runtime.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Site     SiteConfig
	Content  ContentConfig
	Markdown MarkdownConfig
	Meta     MetaConfig
	Feeds    FeedsConfig
	Scaffold ScaffoldConfig
	Features Features
	Logging  LoggingConfig
	Routes   *urlkit.Config
}

// SiteConfig captures the identity fields shared across metadata, feeds, and
// canonical URL generation.
type SiteConfig struct {
	Name        string
	BaseURL     string
	Description string
	Author      string
	Language    string
}

// ContentConfig captures filesystem and derivation behaviour for the loader.
type ContentConfig struct {
	// Dir is the content root holding one sub-directory per category.
	Dir string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// ExcerptLength bounds derived blog excerpts, in characters.
	ExcerptLength int
	// WordsPerMinute drives the reading time estimate.
	WordsPerMinute int
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions     []string
	HighlightTheme string
	Sanitize       bool
	HardWraps      bool
	SafeMode       bool
}

// MetaConfig captures fallbacks and image resolution for the metadata generator.
type MetaConfig struct {
	// DefaultImage is emitted when a record carries no images.
	DefaultImage string
	// ImageBasePaths maps a category to the public path its images resolve under.
	ImageBasePaths map[string]string
	// FallbackDescription terminates the description fallback chain.
	FallbackDescription string
	// TitleTemplates maps a category to a "%s"-style template combining the
	// record title with the site name.
	TitleTemplates map[string]string
}

// FeedsConfig controls the RSS and sitemap builders.
type FeedsConfig struct {
	Enabled   bool
	ItemLimit int
}

// ScaffoldConfig controls where scaffolded content files are written.
type ScaffoldConfig struct {
	// Dir overrides Content.Dir for generated files; empty uses Content.Dir.
	Dir string
	// DefaultAuthor is stamped into scaffolded blog front matter.
	DefaultAuthor string
}

// Features toggles module functionality.
type Features struct {
	Feeds    bool
	Scaffold bool
	Logger   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a single-author portfolio site.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name:     "Portfolio",
			BaseURL:  "http://localhost:3000",
			Language: "en",
		},
		Content: ContentConfig{
			Dir:            "content",
			Pattern:        "*.md",
			ExcerptLength:  150,
			WordsPerMinute: 200,
		},
		Markdown: MarkdownConfig{
			Extensions:     []string{"table", "strikethrough", "tasklist", "highlighting"},
			HighlightTheme: "github",
		},
		Meta: MetaConfig{
			DefaultImage: "/images/og-default.png",
			ImageBasePaths: map[string]string{
				"blog":     "/images/blog",
				"projects": "/images/projects",
				"pages":    "/images",
			},
			FallbackDescription: "Personal portfolio and blog.",
			TitleTemplates: map[string]string{
				"blog":     "%s — %s",
				"projects": "%s — %s",
				"pages":    "%s — %s",
			},
		},
		Feeds: FeedsConfig{
			Enabled:   true,
			ItemLimit: 100,
		},
		Features: Features{
			Feeds:    true,
			Scaffold: true,
			Logger:   true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "console",
		},
		Routes: &urlkit.Config{
			Groups: []urlkit.GroupConfig{
				{
					Name:    "site",
					BaseURL: "http://localhost:3000",
					Paths: map[string]string{
						"home":    "/",
						"blog":    "/blog/:slug",
						"project": "/projects/:slug",
						"page":    "/:slug",
					},
				},
			},
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Site.Name) == "" {
		return ErrSiteNameRequired
	}
	if strings.TrimSpace(cfg.Site.BaseURL) == "" {
		return ErrSiteBaseURLRequired
	}
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Content.ExcerptLength <= 0 {
		return ErrExcerptLengthInvalid
	}
	if cfg.Content.WordsPerMinute <= 0 {
		return ErrWordsPerMinuteInvalid
	}
	if cfg.Feeds.ItemLimit < 0 {
		return ErrFeedLimitInvalid
	}

	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return ErrLoggingProviderUnknown
		}
		if !isSupportedLevel(cfg.Logging.Level) {
			return ErrLoggingLevelInvalid
		}
		if provider == "gologger" && !isSupportedFormat(cfg.Logging.Format) {
			return ErrLoggingFormatInvalid
		}
	}

	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger", "noop":
		return true
	}
	return false
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "console", "pretty":
		return true
	}
	return false
}
