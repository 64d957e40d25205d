package feeds

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

type sitemapEntry struct {
	Location string
	LastMod  time.Time
}

// Sitemap renders a sitemap.xml covering the home page and every externally
// visible record across all categories. Draft blog posts are excluded.
func (b *Builder) Sitemap(ctx context.Context) (string, error) {
	generatedAt := b.clock()
	base := baseURLWithFallback(b.cfg.BaseURL)

	entries := []sitemapEntry{{Location: base + "/", LastMod: generatedAt}}
	seen := map[string]struct{}{entries[0].Location: {}}

	for _, category := range []interfaces.Category{
		interfaces.CategoryBlog,
		interfaces.CategoryProjects,
		interfaces.CategoryPages,
	} {
		records, err := b.contents.List(ctx, category, interfaces.ListOptions{})
		if err != nil {
			return "", fmt.Errorf("feeds: list %s records: %w", category, err)
		}
		for _, record := range records {
			bundle := b.meta.Generate(ctx, record)
			if !bundle.Indexable {
				continue
			}
			if _, ok := seen[bundle.Canonical]; ok {
				continue
			}
			seen[bundle.Canonical] = struct{}{}

			lastMod := record.LastModified
			if lastMod.IsZero() {
				lastMod = record.Date()
			}
			if lastMod.IsZero() {
				lastMod = generatedAt
			}
			entries = append(entries, sitemapEntry{
				Location: bundle.Canonical,
				LastMod:  lastMod,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", escapeXML(entry.Location)))
		builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String(), nil
}
