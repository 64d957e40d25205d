package folio

import (
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/di"
	"github.com/goliatone/go-folio/internal/feeds"
	"github.com/goliatone/go-folio/internal/meta"
	"github.com/goliatone/go-folio/internal/scaffold"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// ContentService exports the content loader contract for consumers of the folio package.
type ContentService = interfaces.ContentService

// MetadataGenerator exports the metadata generation contract.
type MetadataGenerator = interfaces.MetadataGenerator

// Record exports the loaded content record type.
type Record = interfaces.Record

// MetaBundle exports the derived page metadata type.
type MetaBundle = interfaces.MetaBundle

// Category exports the content category identifier.
type Category = interfaces.Category

// ListOptions exports collection listing options.
type ListOptions = interfaces.ListOptions

// Category identifiers re-exported for host convenience.
const (
	CategoryBlog     = interfaces.CategoryBlog
	CategoryProjects = interfaces.CategoryProjects
	CategoryPages    = interfaces.CategoryPages
)

// Sentinel errors surfaced by single-record lookups.
var (
	ErrRecordNotFound     = content.ErrRecordNotFound
	ErrFrontMatterInvalid = content.ErrFrontMatterInvalid
	ErrCategoryInvalid    = content.ErrCategoryInvalid
)

// FeedBuilder exports the feed and sitemap builder.
type FeedBuilder = feeds.Builder

// Scaffolder exports the content scaffolding service.
type Scaffolder = scaffold.Service

// Module represents the top level folio runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a folio module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content loader.
func (m *Module) Content() *content.Service {
	return m.container.ContentService()
}

// Meta returns the configured metadata generator.
func (m *Module) Meta() *meta.Generator {
	return m.container.MetaGenerator()
}

// Feeds returns the feed builder, or nil when the feature is disabled.
func (m *Module) Feeds() *FeedBuilder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.FeedBuilder()
}

// Scaffold returns the scaffolding service, or nil when the feature is disabled.
func (m *Module) Scaffold() *Scaffolder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Scaffolder()
}

// Logger returns the resolved logger provider.
func (m *Module) Logger() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}
