package feeds

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const defaultItemLimit = 100

// Config captures the site identity embedded into feed and sitemap output.
type Config struct {
	SiteName    string
	BaseURL     string
	Description string
	Language    string
	ItemLimit   int
}

// Builder produces RSS and sitemap documents from the loaded collections.
type Builder struct {
	cfg      Config
	contents interfaces.ContentService
	meta     interfaces.MetadataGenerator
	logger   interfaces.Logger
	clock    func() time.Time
}

// Option customises the builder during construction.
type Option func(*Builder)

// WithClock overrides the time source used for build timestamps.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithLogger attaches a logger to the builder.
func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder constructs a feed builder over the supplied content service and
// metadata generator.
func NewBuilder(cfg Config, contents interfaces.ContentService, meta interfaces.MetadataGenerator, opts ...Option) *Builder {
	if cfg.ItemLimit <= 0 {
		cfg.ItemLimit = defaultItemLimit
	}
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = "en"
	}

	b := &Builder{
		cfg:      cfg,
		contents: contents,
		meta:     meta,
		logger:   logging.NoOp(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RSS renders an RSS 2.0 feed of published blog records, most recent first.
func (b *Builder) RSS(ctx context.Context) (string, error) {
	records, err := b.contents.List(ctx, interfaces.CategoryBlog, interfaces.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("feeds: list blog records: %w", err)
	}
	if len(records) > b.cfg.ItemLimit {
		records = records[:b.cfg.ItemLimit]
	}

	generatedAt := b.clock()
	base := baseURLWithFallback(b.cfg.BaseURL)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(b.cfg.SiteName)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(base)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(b.cfg.Description)))
	builder.WriteString(fmt.Sprintf("    <language>%s</language>\n", escapeXML(b.cfg.Language)))
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))

	for _, record := range records {
		bundle := b.meta.Generate(ctx, record)
		pub := record.Date()
		if pub.IsZero() {
			pub = generatedAt
		}
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(record.Title())))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(bundle.Canonical)))
		builder.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", escapeXML(bundle.Canonical)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", pub.UTC().Format(time.RFC1123Z)))
		if bundle.Description != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(bundle.Description)))
		}
		builder.WriteString("    </item>\n")
	}

	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String(), nil
}

func baseURLWithFallback(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}
	return base
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
