package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const sourceExtension = ".md"

// Config controls how the content service discovers and derives records.
type Config struct {
	// BasePath is the content root holding one sub-directory per category.
	BasePath string
	// Pattern limits discovered files within a category directory (defaults to "*.md").
	Pattern string
	// ExcerptLength bounds derived blog excerpts, in characters.
	ExcerptLength int
	// WordsPerMinute drives the reading time estimate.
	WordsPerMinute int
	// Parser holds the default Markdown rendering options.
	Parser interfaces.ParseOptions
}

// Service implements interfaces.ContentService over a filesystem content root.
// Every call re-reads and re-parses source files; there is no cache because the
// consumer is a static generation pass, not a per-request server.
type Service struct {
	fs     fs.FS
	cfg    Config
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

var _ interfaces.ContentService = (*Service)(nil)

// Option customises the service during construction.
type Option func(*Service)

// WithFS overrides the filesystem backing the service. Tests use this with
// fstest.MapFS; production code relies on the default os.DirFS.
func WithFS(fsys fs.FS) Option {
	return func(s *Service) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithParser overrides the Markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithLogger attaches a logger to the service. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a content service rooted at cfg.BasePath.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*" + sourceExtension
	}
	if cfg.ExcerptLength <= 0 {
		cfg.ExcerptLength = 150
	}
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = 200
	}

	svc := &Service{
		cfg:    cfg,
		parser: markdown.NewGoldmarkParser(cfg.Parser),
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.fs == nil {
		fsys, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		svc.fs = fsys
	}

	return svc, nil
}

// Get loads a single record by category and slug. A missing source file yields
// a RecordNotFoundError; malformed front matter yields a ParseError. Both are
// recoverable at the call site.
func (s *Service) Get(ctx context.Context, category interfaces.Category, slug string) (*interfaces.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, ErrCategoryInvalid
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if strings.ContainsAny(slug, "/\\") || slug == "." || slug == ".." {
		return nil, ErrSlugInvalid
	}

	rel := path.Join(string(category), slug+sourceExtension)
	data, err := fs.ReadFile(s.fs, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("content.get.not_found", "category", string(category), "slug", slug)
			return nil, &RecordNotFoundError{Category: string(category), Slug: slug}
		}
		return nil, fmt.Errorf("content read %s: %w", rel, err)
	}

	modified := time.Time{}
	if info, statErr := fs.Stat(s.fs, rel); statErr == nil {
		modified = info.ModTime()
	}

	record, err := s.buildRecord(category, slug, rel, data, modified)
	if err != nil {
		logging.WithContentContext(s.logger, string(category), slug, rel).
			Warn("content.get.parse_failed", "error", err)
		return nil, err
	}
	return record, nil
}

// List returns the ordered collection for one category. A missing category
// directory is a valid "no content yet" state and yields an empty collection.
// Unparseable files are logged and skipped; the listing never fails outright.
func (s *Service) List(ctx context.Context, category interfaces.Category, opts interfaces.ListOptions) ([]*interfaces.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, ErrCategoryInvalid
	}

	entries, err := fs.ReadDir(s.fs, string(category))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("content list %s: %w", category, err)
	}

	var records []*interfaces.Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !s.matchesPattern(name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slug := strings.TrimSuffix(name, filepath.Ext(name))
		rel := path.Join(string(category), name)

		data, readErr := fs.ReadFile(s.fs, rel)
		if readErr != nil {
			logging.WithContentContext(s.logger, string(category), slug, rel).
				Warn("content.list.read_failed", "error", readErr)
			continue
		}

		modified := time.Time{}
		if info, statErr := entry.Info(); statErr == nil {
			modified = info.ModTime()
		}

		record, buildErr := s.buildRecord(category, slug, rel, data, modified)
		if buildErr != nil {
			logging.WithContentContext(s.logger, string(category), slug, rel).
				Warn("content.list.parse_failed", "error", buildErr)
			continue
		}

		if record.Draft() && !opts.IncludeDrafts {
			continue
		}
		records = append(records, record)
	}

	sortRecords(category, records)
	return records, nil
}

// ListSlugs enumerates the slugs of externally visible records for a category,
// in listing order. Static-path enumeration pre-declares pages with this.
func (s *Service) ListSlugs(ctx context.Context, category interfaces.Category) ([]string, error) {
	records, err := s.List(ctx, category, interfaces.ListOptions{})
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(records))
	for _, record := range records {
		slugs = append(slugs, record.Slug)
	}
	return slugs, nil
}

func (s *Service) buildRecord(category interfaces.Category, slug, rel string, data []byte, modified time.Time) (*interfaces.Record, error) {
	record := &interfaces.Record{
		Slug:         slug,
		Category:     category,
		FilePath:     rel,
		LastModified: modified,
	}

	var body []byte
	switch category {
	case interfaces.CategoryBlog:
		meta, parsed, err := markdown.ParseBlog(data)
		if err != nil {
			return nil, &ParseError{Category: string(category), Slug: slug, Err: err}
		}
		record.Blog = &meta
		body = parsed
	case interfaces.CategoryProjects:
		meta, parsed, err := markdown.ParseProject(data)
		if err != nil {
			return nil, &ParseError{Category: string(category), Slug: slug, Err: err}
		}
		record.Project = &meta
		body = parsed
	case interfaces.CategoryPages:
		meta, parsed, err := markdown.ParsePage(data)
		if err != nil {
			return nil, &ParseError{Category: string(category), Slug: slug, Err: err}
		}
		record.Page = &meta
		body = parsed
	default:
		return nil, ErrCategoryInvalid
	}

	record.Body = body

	html, err := s.parser.Parse(body)
	if err != nil {
		return nil, &ParseError{Category: string(category), Slug: slug, Err: err}
	}
	record.BodyHTML = html

	record.WordCount = CountWords(body)
	record.ReadingTime = ReadingTime(record.WordCount, s.cfg.WordsPerMinute)

	if record.Blog != nil {
		if excerpt := strings.TrimSpace(record.Blog.Excerpt); excerpt != "" {
			record.Excerpt = excerpt
		} else {
			record.Excerpt = Excerpt(FirstParagraph(body), s.cfg.ExcerptLength)
		}
	}

	return record, nil
}

func (s *Service) matchesPattern(name string) bool {
	pattern := s.cfg.Pattern
	match, err := path.Match(pattern, name)
	if err != nil {
		return false
	}
	return match
}

// sortRecords applies the category-specific listing order. Blog posts list by
// date descending; projects list featured-first then by status-priority rank.
// Filename order breaks ties in both cases so listings stay deterministic.
func sortRecords(category interfaces.Category, records []*interfaces.Record) {
	switch category {
	case interfaces.CategoryBlog:
		sort.SliceStable(records, func(i, j int) bool {
			di, dj := records[i].Date(), records[j].Date()
			if !di.Equal(dj) {
				return di.After(dj)
			}
			return records[i].FilePath < records[j].FilePath
		})
	case interfaces.CategoryProjects:
		sort.SliceStable(records, func(i, j int) bool {
			pi, pj := records[i].Project, records[j].Project
			if pi.Featured != pj.Featured {
				return pi.Featured
			}
			ri, rj := pi.Status.Rank(), pj.Status.Rank()
			if ri != rj {
				return ri < rj
			}
			return records[i].FilePath < records[j].FilePath
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].FilePath < records[j].FilePath
		})
	}
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("content service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
