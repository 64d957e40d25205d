package folio_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	folio "github.com/goliatone/go-folio"
	"github.com/goliatone/go-folio/internal/di"
)

func testModule(t *testing.T) *folio.Module {
	t.Helper()

	cfg := folio.DefaultConfig()
	cfg.Site.Name = "Acme Dev"
	cfg.Site.BaseURL = "https://acme.dev"
	cfg.Routes.Groups[0].BaseURL = "https://acme.dev"
	cfg.Logging.Provider = "noop"

	fsys := fstest.MapFS{
		"blog/welcome.md": {Data: []byte(`---
title: Welcome
date: 2026-01-05
status: published
tags: [meta]
---
The first post on the new site.`)},
		"blog/draft-idea.md": {Data: []byte(`---
title: Draft Idea
date: 2026-02-01
status: draft
---
Not ready.`)},
		"projects/folio.md": {Data: []byte(`---
title: Folio
status: Active
featured: true
technologies: [Go]
---
A content engine.`)},
		"pages/about.md": {Data: []byte(`---
title: About
description: Who runs this site.
---
Hi there.`)},
	}

	module, err := folio.New(cfg, di.WithContentFS(fsys))
	if err != nil {
		t.Fatalf("folio.New: %v", err)
	}
	return module
}

func TestModuleLoadsAndDescribesContent(t *testing.T) {
	module := testModule(t)
	ctx := context.Background()

	record, err := module.Content().Get(ctx, folio.CategoryBlog, "welcome")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.Title() != "Welcome" {
		t.Fatalf("unexpected title: %q", record.Title())
	}

	bundle := module.Meta().Generate(ctx, record)
	if bundle.Canonical != "https://acme.dev/blog/welcome" {
		t.Fatalf("unexpected canonical: %q", bundle.Canonical)
	}
	if bundle.LinkedData["@type"] != "BlogPosting" {
		t.Fatalf("unexpected linked data type: %v", bundle.LinkedData["@type"])
	}
}

func TestModuleListingsExcludeDrafts(t *testing.T) {
	module := testModule(t)

	slugs, err := module.Content().ListSlugs(context.Background(), folio.CategoryBlog)
	if err != nil {
		t.Fatalf("ListSlugs: %v", err)
	}
	if len(slugs) != 1 || slugs[0] != "welcome" {
		t.Fatalf("expected published slugs only, got %v", slugs)
	}
}

func TestModuleNotFoundIsRecoverable(t *testing.T) {
	module := testModule(t)

	_, err := module.Content().Get(context.Background(), folio.CategoryBlog, "missing")
	if !errors.Is(err, folio.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestModuleFeeds(t *testing.T) {
	module := testModule(t)

	builder := module.Feeds()
	if builder == nil {
		t.Fatal("expected feed builder with default features")
	}

	rss, err := builder.RSS(context.Background())
	if err != nil {
		t.Fatalf("RSS: %v", err)
	}
	if !strings.Contains(rss, "https://acme.dev/blog/welcome") {
		t.Fatalf("expected canonical link in feed, got:\n%s", rss)
	}

	sitemap, err := builder.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}
	if strings.Contains(sitemap, "draft-idea") {
		t.Fatal("drafts must not surface in the sitemap")
	}
	if !strings.Contains(sitemap, "https://acme.dev/projects/folio") {
		t.Fatalf("expected project entry in sitemap, got:\n%s", sitemap)
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := folio.DefaultConfig()
	cfg.Site.Name = ""

	if _, err := folio.New(cfg); !errors.Is(err, folio.ErrSiteNameRequired) {
		t.Fatalf("expected ErrSiteNameRequired, got %v", err)
	}
}
