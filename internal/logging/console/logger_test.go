package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("folio.content")
	logger = logger.WithContext(logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	}))

	logger.Info("content.loaded",
		"slug", "first-post",
		"category", "blog",
	)

	got := strings.TrimSpace(buf.String())
	want := "2026-03-14T15:09:26.535897Z INFO content.loaded category=blog correlation_id=req-1234 logger=folio.content slug=first-post"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("folio.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
	if strings.Contains(lines[0], "ignored.debug") {
		t.Fatalf("unexpected debug log present: %s", lines[0])
	}
}

func TestConsoleLogger_FieldsAccumulate(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	base := provider.GetLogger("folio.test")
	scoped := logging.WithContentContext(base, "blog", "first-post", "blog/first-post.md")
	scoped.Warn("content.list.parse_failed", "error", "bad frontmatter")

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"category=blog", "slug=first-post", "content_path=blog/first-post.md", `error="bad frontmatter"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in entry, got %s", want, line)
		}
	}
}
