package di

import (
	"io/fs"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/feeds"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
	"github.com/goliatone/go-folio/internal/logging/gologger"
	"github.com/goliatone/go-folio/internal/meta"
	"github.com/goliatone/go-folio/internal/runtimeconfig"
	"github.com/goliatone/go-folio/internal/scaffold"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Container wires the folio services from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	contentFS      fs.FS
	routes         *urlkit.RouteManager

	contentSvc  *content.Service
	metaGen     *meta.Generator
	feedBuilder *feeds.Builder
	scaffolder  *scaffold.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider resolved from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithContentFS overrides the filesystem backing the content service. Tests
// use this with fstest.MapFS.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		if fsys != nil {
			c.contentFS = fsys
		}
	}
}

// NewContainer validates cfg and assembles the service graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := resolveLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if cfg.Routes != nil {
		c.routes = urlkit.NewRouteManager(cfg.Routes)
	}

	contentOpts := []content.Option{
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
	}
	if c.contentFS != nil {
		contentOpts = append(contentOpts, content.WithFS(c.contentFS))
	}

	contentSvc, err := content.NewService(content.Config{
		BasePath:       cfg.Content.Dir,
		Pattern:        cfg.Content.Pattern,
		ExcerptLength:  cfg.Content.ExcerptLength,
		WordsPerMinute: cfg.Content.WordsPerMinute,
		Parser: interfaces.ParseOptions{
			Extensions:     cfg.Markdown.Extensions,
			HighlightTheme: cfg.Markdown.HighlightTheme,
			Sanitize:       cfg.Markdown.Sanitize,
			HardWraps:      cfg.Markdown.HardWraps,
			SafeMode:       cfg.Markdown.SafeMode,
		},
	}, contentOpts...)
	if err != nil {
		return nil, err
	}
	c.contentSvc = contentSvc

	c.metaGen = meta.NewGenerator(meta.Config{
		SiteName:            cfg.Site.Name,
		BaseURL:             cfg.Site.BaseURL,
		Author:              cfg.Site.Author,
		DefaultImage:        cfg.Meta.DefaultImage,
		ImageBasePaths:      cfg.Meta.ImageBasePaths,
		TitleTemplates:      cfg.Meta.TitleTemplates,
		FallbackDescription: cfg.Meta.FallbackDescription,
	}, c.routes, logging.MetaLogger(c.loggerProvider))

	if cfg.Features.Feeds {
		c.feedBuilder = feeds.NewBuilder(feeds.Config{
			SiteName:    cfg.Site.Name,
			BaseURL:     cfg.Site.BaseURL,
			Description: cfg.Site.Description,
			Language:    cfg.Site.Language,
			ItemLimit:   cfg.Feeds.ItemLimit,
		}, c.contentSvc, c.metaGen, feeds.WithLogger(logging.FeedsLogger(c.loggerProvider)))
	}

	if cfg.Features.Scaffold {
		dir := cfg.Scaffold.Dir
		if strings.TrimSpace(dir) == "" {
			dir = cfg.Content.Dir
		}
		c.scaffolder = scaffold.NewService(scaffold.Config{
			Dir:           dir,
			DefaultAuthor: cfg.Scaffold.DefaultAuthor,
		}, scaffold.WithLogger(logging.ScaffoldLogger(c.loggerProvider)))
	}

	return c, nil
}

// LoggerProvider exposes the resolved logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// ContentService exposes the configured content loader.
func (c *Container) ContentService() *content.Service {
	return c.contentSvc
}

// MetaGenerator exposes the configured metadata generator.
func (c *Container) MetaGenerator() *meta.Generator {
	return c.metaGen
}

// FeedBuilder exposes the feed builder, or nil when the feature is disabled.
func (c *Container) FeedBuilder() *feeds.Builder {
	return c.feedBuilder
}

// Scaffolder exposes the scaffold service, or nil when the feature is disabled.
func (c *Container) Scaffolder() *scaffold.Service {
	return c.scaffolder
}

// Routes exposes the urlkit route manager, or nil when no routes are configured.
func (c *Container) Routes() *urlkit.RouteManager {
	return c.routes
}

func resolveLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return noopProvider{}, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	case "noop":
		return noopProvider{}, nil
	default:
		level := consoleLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
