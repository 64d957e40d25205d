package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

var (
	ErrTitleRequired = errors.New("scaffold: title is required")
	ErrTargetExists  = errors.New("scaffold: target file already exists")
)

// Config controls where scaffolded content files land.
type Config struct {
	// Dir is the content root; category sub-directories are created on demand.
	Dir string
	// DefaultAuthor is stamped into blog front matter when the input omits one.
	DefaultAuthor string
}

// Service writes template content files with populated front matter. Existing
// files are never overwritten; re-running a scaffold is a safe no-op failure.
type Service struct {
	cfg    Config
	logger interfaces.Logger
	clock  func() time.Time
}

// Option customises the service during construction.
type Option func(*Service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source stamped into generated front matter.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs a scaffolder rooted at cfg.Dir.
func NewService(cfg Config, opts ...Option) *Service {
	svc := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// PostInput captures the fields prompted for when scaffolding a blog post.
type PostInput struct {
	Title   string
	Tags    []string
	Excerpt string
	Author  string
	Draft   bool
}

// ProjectInput captures the fields prompted for when scaffolding a project.
type ProjectInput struct {
	Title        string
	Description  string
	Status       interfaces.ProjectStatus
	Featured     bool
	Technologies []string
	Repository   string
	Demo         string
}

// Result reports where a scaffolded file was written.
type Result struct {
	Slug string
	Path string
}

// NewPost writes a blog post template under <dir>/blog/<slug>.md.
func (s *Service) NewPost(ctx context.Context, input PostInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, err := s.slugify(input.Title)
	if err != nil {
		return nil, err
	}

	status := interfaces.StatusPublished
	if input.Draft {
		status = interfaces.StatusDraft
	}
	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = s.cfg.DefaultAuthor
	}

	var buf bytes.Buffer
	err = postTmpl.Execute(&buf, map[string]any{
		"Title":   strings.TrimSpace(input.Title),
		"Date":    s.clock().UTC().Format("2006-01-02"),
		"Status":  status,
		"Author":  author,
		"Tags":    input.Tags,
		"Excerpt": strings.TrimSpace(input.Excerpt),
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold: render post template: %w", err)
	}

	return s.write(string(interfaces.CategoryBlog), normalized, buf.Bytes())
}

// NewProject writes a project template under <dir>/projects/<slug>.md.
func (s *Service) NewProject(ctx context.Context, input ProjectInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, err := s.slugify(input.Title)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if !status.Valid() {
		status = interfaces.ProjectPlanning
	}

	var buf bytes.Buffer
	err = projectTmpl.Execute(&buf, map[string]any{
		"Title":        strings.TrimSpace(input.Title),
		"Status":       string(status),
		"Featured":     input.Featured,
		"Date":         s.clock().UTC().Format("2006-01-02"),
		"Description":  strings.TrimSpace(input.Description),
		"Technologies": input.Technologies,
		"Repository":   strings.TrimSpace(input.Repository),
		"Demo":         strings.TrimSpace(input.Demo),
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold: render project template: %w", err)
	}

	return s.write(string(interfaces.CategoryProjects), normalized, buf.Bytes())
}

func (s *Service) slugify(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrTitleRequired
	}
	normalized, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("scaffold: normalize slug for %q: %w", title, err)
	}
	return normalized, nil
}

func (s *Service) write(category, slugName string, content []byte) (*Result, error) {
	dir := filepath.Join(s.cfg.Dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scaffold: create directory %s: %w", dir, err)
	}

	target := filepath.Join(dir, slugName+".md")
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("scaffold: stat %s: %w", target, err)
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return nil, fmt.Errorf("scaffold: write %s: %w", target, err)
	}

	s.logger.Info("scaffold.write", "category", category, "slug", slugName, "path", target)
	return &Result{Slug: slugName, Path: target}, nil
}
