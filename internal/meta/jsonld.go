package meta

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

const schemaContext = "https://schema.org"

// linkedData builds the JSON-LD object embedded alongside the bundle. The
// shape varies by category: blog posts carry publication dates, word count,
// and reading duration; projects carry the technology list and external links.
func (g *Generator) linkedData(record *interfaces.Record, bundle interfaces.MetaBundle) map[string]any {
	switch {
	case record.Blog != nil:
		return g.blogPosting(record, bundle)
	case record.Project != nil:
		return g.softwareSourceCode(record, bundle)
	default:
		return g.webPage(record, bundle)
	}
}

func (g *Generator) blogPosting(record *interfaces.Record, bundle interfaces.MetaBundle) map[string]any {
	blog := record.Blog
	data := map[string]any{
		"@context":     schemaContext,
		"@type":        "BlogPosting",
		"headline":     firstNonEmpty(blog.Title, record.Slug),
		"description":  bundle.Description,
		"url":          bundle.Canonical,
		"image":        bundle.Image,
		"wordCount":    record.WordCount,
		"timeRequired": fmt.Sprintf("PT%dM", record.ReadingTime),
	}

	if !blog.Date.IsZero() {
		data["datePublished"] = blog.Date.UTC().Format(time.RFC3339)
	}
	modified := blog.Updated
	if modified.IsZero() {
		modified = blog.Date
	}
	if !modified.IsZero() {
		data["dateModified"] = modified.UTC().Format(time.RFC3339)
	}

	if author := firstNonEmpty(blog.Author, g.cfg.Author); author != "" {
		data["author"] = map[string]any{
			"@type": "Person",
			"name":  author,
		}
	}
	if len(blog.Tags) > 0 {
		data["keywords"] = strings.Join(blog.Tags, ", ")
	}

	return data
}

func (g *Generator) softwareSourceCode(record *interfaces.Record, bundle interfaces.MetaBundle) map[string]any {
	project := record.Project
	data := map[string]any{
		"@context":    schemaContext,
		"@type":       "SoftwareSourceCode",
		"name":        firstNonEmpty(project.Title, record.Slug),
		"description": bundle.Description,
		"url":         bundle.Canonical,
		"image":       bundle.Image,
	}

	if len(project.Technologies) > 0 {
		data["programmingLanguage"] = strings.Join(project.Technologies, ", ")
	}
	if repo := strings.TrimSpace(project.Repository); repo != "" {
		data["codeRepository"] = repo
	}
	if demo := strings.TrimSpace(project.Demo); demo != "" {
		data["installUrl"] = demo
	}

	return data
}

func (g *Generator) webPage(record *interfaces.Record, bundle interfaces.MetaBundle) map[string]any {
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "WebPage",
		"name":        firstNonEmpty(record.Title(), record.Slug),
		"description": bundle.Description,
		"url":         bundle.Canonical,
	}
}
