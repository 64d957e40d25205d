package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

// ParseBlog extracts blog front matter and the Markdown body from the provided
// source bytes. An empty status defaults to published so hand-written files
// stay visible without boilerplate.
func ParseBlog(source []byte) (interfaces.BlogMetadata, []byte, error) {
	var meta interfaces.BlogMetadata
	body, err := parse(source, &meta)
	if err != nil {
		return interfaces.BlogMetadata{}, nil, err
	}

	if strings.TrimSpace(meta.Status) == "" {
		meta.Status = interfaces.StatusPublished
	}
	switch meta.Status {
	case interfaces.StatusPublished, interfaces.StatusDraft:
	default:
		return interfaces.BlogMetadata{}, nil, fmt.Errorf("parse frontmatter: blog status %q is not published or draft", meta.Status)
	}
	if meta.Date.IsZero() {
		return interfaces.BlogMetadata{}, nil, fmt.Errorf("parse frontmatter: blog post is missing a date")
	}

	return meta, body, nil
}

// ParseProject extracts project front matter and the Markdown body. The status
// must belong to the fixed lifecycle enumeration.
func ParseProject(source []byte) (interfaces.ProjectMetadata, []byte, error) {
	var meta interfaces.ProjectMetadata
	body, err := parse(source, &meta)
	if err != nil {
		return interfaces.ProjectMetadata{}, nil, err
	}

	if !meta.Status.Valid() {
		return interfaces.ProjectMetadata{}, nil, fmt.Errorf("parse frontmatter: project status %q is not one of Active, Planning, Paused, Completed", meta.Status)
	}

	return meta, body, nil
}

// ParsePage extracts static page front matter and the Markdown body.
func ParsePage(source []byte) (interfaces.PageMetadata, []byte, error) {
	var meta interfaces.PageMetadata
	body, err := parse(source, &meta)
	if err != nil {
		return interfaces.PageMetadata{}, nil, err
	}
	return meta, body, nil
}

func parse(source []byte, meta any) ([]byte, error) {
	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return body, nil
}
