package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

func post(title, date, status, body string) *fstest.MapFile {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("title: " + title + "\n")
	sb.WriteString("date: " + date + "\n")
	if status != "" {
		sb.WriteString("status: " + status + "\n")
	}
	sb.WriteString("---\n")
	sb.WriteString(body)
	return &fstest.MapFile{Data: []byte(sb.String()), ModTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func project(title, status string, featured bool) *fstest.MapFile {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("title: " + title + "\n")
	sb.WriteString("status: " + status + "\n")
	if featured {
		sb.WriteString("featured: true\n")
	}
	sb.WriteString("---\n")
	sb.WriteString("Project body.")
	return &fstest.MapFile{Data: []byte(sb.String())}
}

func newTestService(t *testing.T, fsys fstest.MapFS) *Service {
	t.Helper()
	svc, err := NewService(Config{}, WithFS(fsys))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestGetReturnsRecord(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/hello.md": post("Hello", "2026-01-10", "published", "First **paragraph** here.\n\nSecond paragraph."),
	}
	svc := newTestService(t, fsys)

	record, err := svc.Get(context.Background(), interfaces.CategoryBlog, "hello")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.Slug != "hello" {
		t.Fatalf("expected slug hello, got %q", record.Slug)
	}
	if record.Blog == nil {
		t.Fatal("expected blog metadata to be set")
	}
	if record.Blog.Title != "Hello" {
		t.Fatalf("expected title Hello, got %q", record.Blog.Title)
	}
	if !strings.Contains(string(record.BodyHTML), "<strong>paragraph</strong>") {
		t.Fatalf("expected rendered HTML, got %q", record.BodyHTML)
	}
	if record.ReadingTime != 1 {
		t.Fatalf("expected 1 minute reading time, got %d", record.ReadingTime)
	}
	if record.Excerpt != "First **paragraph** here." {
		t.Fatalf("unexpected derived excerpt: %q", record.Excerpt)
	}
	if record.LastModified.IsZero() {
		t.Fatal("expected last modified timestamp from the filesystem")
	}
}

func TestGetMissingRecord(t *testing.T) {
	svc := newTestService(t, fstest.MapFS{})

	_, err := svc.Get(context.Background(), interfaces.CategoryBlog, "absent")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	var notFound *RecordNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected RecordNotFoundError, got %T", err)
	}
	if notFound.Slug != "absent" {
		t.Fatalf("expected slug in error, got %q", notFound.Slug)
	}
}

func TestGetRejectsTraversalSlugs(t *testing.T) {
	svc := newTestService(t, fstest.MapFS{})

	for _, slug := range []string{"", "..", "a/b", `a\b`} {
		if _, err := svc.Get(context.Background(), interfaces.CategoryBlog, slug); err == nil {
			t.Fatalf("expected error for slug %q", slug)
		}
	}
}

func TestGetInvalidFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/bad.md": {Data: []byte("---\ntitle: Broken\nstatus: nonsense\ndate: 2026-01-01\n---\nBody.")},
	}
	svc := newTestService(t, fsys)

	_, err := svc.Get(context.Background(), interfaces.CategoryBlog, "bad")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestGetDraftDirectLookup(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/wip.md": post("WIP", "2026-02-01", "draft", "Work in progress."),
	}
	svc := newTestService(t, fsys)

	record, err := svc.Get(context.Background(), interfaces.CategoryBlog, "wip")
	if err != nil {
		t.Fatalf("drafts stay retrievable by slug: %v", err)
	}
	if !record.Draft() {
		t.Fatal("expected record to report draft status")
	}
}

func TestGetInvalidCategory(t *testing.T) {
	svc := newTestService(t, fstest.MapFS{})
	if _, err := svc.Get(context.Background(), interfaces.Category("gallery"), "x"); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid, got %v", err)
	}
}

func TestListBlogOrdering(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/older.md":  post("Older", "2026-01-01", "published", "Older body."),
		"blog/newer.md":  post("Newer", "2026-03-01", "published", "Newer body."),
		"blog/a-tie.md":  post("Tie A", "2026-02-01", "published", "Tie body."),
		"blog/b-tie.md":  post("Tie B", "2026-02-01", "published", "Tie body."),
		"blog/hidden.md": post("Hidden", "2026-04-01", "draft", "Draft body."),
	}
	svc := newTestService(t, fsys)

	records, err := svc.List(context.Background(), interfaces.CategoryBlog, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.Slug)
	}
	expected := []string{"newer", "a-tie", "b-tie", "older"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestListIncludeDrafts(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/live.md": post("Live", "2026-01-01", "published", "Body."),
		"blog/wip.md":  post("WIP", "2026-02-01", "draft", "Body."),
	}
	svc := newTestService(t, fsys)

	records, err := svc.List(context.Background(), interfaces.CategoryBlog, interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected both records, got %d", len(records))
	}
}

func TestListProjectOrdering(t *testing.T) {
	fsys := fstest.MapFS{
		"projects/done.md":     project("Done", "Completed", false),
		"projects/active.md":   project("Active", "Active", false),
		"projects/starred.md":  project("Starred", "Paused", true),
		"projects/planning.md": project("Planning", "Planning", false),
	}
	svc := newTestService(t, fsys)

	records, err := svc.List(context.Background(), interfaces.CategoryProjects, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.Slug)
	}
	// Featured first regardless of status, then status priority.
	expected := []string{"starred", "active", "planning", "done"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestListSkipsUnparseableFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/good.md":   post("Good", "2026-01-01", "published", "Body."),
		"blog/broken.md": {Data: []byte("---\ntitle: [unterminated\n---\nBody.")},
		"blog/nodate.md": {Data: []byte("---\ntitle: No Date\nstatus: published\n---\nBody.")},
	}
	svc := newTestService(t, fsys)

	records, err := svc.List(context.Background(), interfaces.CategoryBlog, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("listing never fails on bad files: %v", err)
	}
	if len(records) != 1 || records[0].Slug != "good" {
		t.Fatalf("expected only the parseable record, got %v", records)
	}
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	svc := newTestService(t, fstest.MapFS{
		"blog/only.md": post("Only", "2026-01-01", "published", "Body."),
	})

	records, err := svc.List(context.Background(), interfaces.CategoryProjects, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("missing directory is a valid empty state: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty listing, got %d records", len(records))
	}
}

func TestListIgnoresNonMatchingFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/post.md":    post("Post", "2026-01-01", "published", "Body."),
		"blog/notes.txt":  {Data: []byte("not markdown")},
		"blog/.draft.swp": {Data: []byte("editor noise")},
	}
	svc := newTestService(t, fsys)

	records, err := svc.List(context.Background(), interfaces.CategoryBlog, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected pattern to filter non-markdown files, got %d records", len(records))
	}
}

func TestListSlugsPublishedOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/first.md":  post("First", "2026-02-01", "published", "Body."),
		"blog/second.md": post("Second", "2026-01-01", "published", "Body."),
		"blog/wip.md":    post("WIP", "2026-03-01", "draft", "Body."),
	}
	svc := newTestService(t, fsys)

	slugs, err := svc.ListSlugs(context.Background(), interfaces.CategoryBlog)
	if err != nil {
		t.Fatalf("ListSlugs: %v", err)
	}
	expected := []string{"first", "second"}
	if strings.Join(slugs, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected slugs: %v", slugs)
	}
}

func TestExplicitExcerptWins(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/custom.md": {Data: []byte("---\ntitle: Custom\ndate: 2026-01-01\nstatus: published\nexcerpt: Hand written summary.\n---\nBody paragraph that would otherwise be derived.")},
	}
	svc := newTestService(t, fsys)

	record, err := svc.Get(context.Background(), interfaces.CategoryBlog, "custom")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.Excerpt != "Hand written summary." {
		t.Fatalf("expected explicit excerpt to win, got %q", record.Excerpt)
	}
}

func TestDerivedExcerptTruncation(t *testing.T) {
	body := strings.Repeat("lorem ipsum dolor ", 20)
	fsys := fstest.MapFS{
		"blog/long.md": post("Long", "2026-01-01", "published", body),
	}
	svc := newTestService(t, fsys)

	record, err := svc.Get(context.Background(), interfaces.CategoryBlog, "long")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.HasSuffix(record.Excerpt, "...") {
		t.Fatalf("expected truncated excerpt, got %q", record.Excerpt)
	}
	if len([]rune(record.Excerpt)) != 153 {
		t.Fatalf("expected 150 runes plus ellipsis, got %d", len([]rune(record.Excerpt)))
	}
}

func TestGetHonoursContextCancellation(t *testing.T) {
	svc := newTestService(t, fstest.MapFS{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Get(ctx, interfaces.CategoryBlog, "anything"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
