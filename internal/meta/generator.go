package meta

import (
	"context"
	"fmt"
	"path"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	siteGroup         = "site"
	defaultTitleTmpl  = "%s — %s"
	defaultImagePath  = "/images/og-default.png"
	slugRouteParam    = "slug"
	fallbackSiteDescr = "Personal portfolio and blog."
)

// Config captures the site identity and fallback values the generator embeds
// into every bundle.
type Config struct {
	SiteName            string
	BaseURL             string
	Author              string
	DefaultImage        string
	ImageBasePaths      map[string]string
	TitleTemplates      map[string]string
	FallbackDescription string
}

// Generator derives page-embedding metadata bundles from content records.
// Every field has a defined fallback, so generation cannot fail; it degrades
// gracefully to defaults.
type Generator struct {
	cfg    Config
	routes *urlkit.RouteManager
	logger interfaces.Logger
}

var _ interfaces.MetadataGenerator = (*Generator)(nil)

// NewGenerator constructs a metadata generator. The route manager is optional;
// without it canonical URLs fall back to path joining against the base URL.
func NewGenerator(cfg Config, routes *urlkit.RouteManager, logger interfaces.Logger) *Generator {
	if strings.TrimSpace(cfg.DefaultImage) == "" {
		cfg.DefaultImage = defaultImagePath
	}
	if strings.TrimSpace(cfg.FallbackDescription) == "" {
		cfg.FallbackDescription = fallbackSiteDescr
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Generator{
		cfg:    cfg,
		routes: routes,
		logger: logger,
	}
}

// Generate satisfies interfaces.MetadataGenerator.
func (g *Generator) Generate(ctx context.Context, record *interfaces.Record) interfaces.MetaBundle {
	_ = ctx // reserved for future use

	if record == nil {
		return interfaces.MetaBundle{
			Title:       g.cfg.SiteName,
			Description: g.cfg.FallbackDescription,
			Canonical:   strings.TrimRight(g.cfg.BaseURL, "/"),
			Image:       g.absoluteImage(g.cfg.DefaultImage),
			Indexable:   true,
			LinkedData:  map[string]any{},
		}
	}

	canonical := g.canonicalURL(record)
	title := g.title(record)
	description := g.description(record)
	image := g.image(record)

	bundle := interfaces.MetaBundle{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Image:       image,
		Indexable:   !record.Draft(),
	}
	bundle.LinkedData = g.linkedData(record, bundle)
	return bundle
}

func (g *Generator) title(record *interfaces.Record) string {
	if explicit := strings.TrimSpace(record.Meta().Title); explicit != "" {
		return explicit
	}

	template := defaultTitleTmpl
	if tmpl, ok := g.cfg.TitleTemplates[string(record.Category)]; ok && strings.TrimSpace(tmpl) != "" {
		template = tmpl
	}

	title := firstNonEmpty(record.Title(), record.Slug)
	if title == "" {
		return g.cfg.SiteName
	}
	return fmt.Sprintf(template, title, g.cfg.SiteName)
}

func (g *Generator) description(record *interfaces.Record) string {
	explicit := record.Meta().Description
	var categoric string
	switch {
	case record.Project != nil:
		categoric = record.Project.Description
	case record.Page != nil:
		categoric = record.Page.Description
	}
	return firstNonEmpty(explicit, categoric, record.Excerpt, g.cfg.FallbackDescription)
}

func (g *Generator) image(record *interfaces.Record) string {
	images := record.Images()
	if len(images) == 0 {
		return g.absoluteImage(g.cfg.DefaultImage)
	}

	first := strings.TrimSpace(images[0])
	if first == "" {
		return g.absoluteImage(g.cfg.DefaultImage)
	}
	if strings.HasPrefix(first, "http://") || strings.HasPrefix(first, "https://") || strings.HasPrefix(first, "/") {
		return g.absoluteImage(first)
	}

	base := g.cfg.ImageBasePaths[string(record.Category)]
	return g.absoluteImage(path.Join("/", base, first))
}

func (g *Generator) absoluteImage(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(g.cfg.BaseURL, "/") + ref
}

func (g *Generator) canonicalURL(record *interfaces.Record) string {
	if g.routes != nil {
		if url, err := g.routeURL(record); err == nil && url != "" {
			return url
		} else if err != nil {
			g.logger.Warn("meta.canonical.route_failed", "category", string(record.Category), "slug", record.Slug, "error", err)
		}
	}

	base := strings.TrimRight(g.cfg.BaseURL, "/")
	switch record.Category {
	case interfaces.CategoryBlog:
		return base + "/blog/" + record.Slug
	case interfaces.CategoryProjects:
		return base + "/projects/" + record.Slug
	default:
		return base + "/" + record.Slug
	}
}

func (g *Generator) routeURL(record *interfaces.Record) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("meta: urlkit route lookup panic: %v", rec)
		}
	}()

	group := g.routes.Group(siteGroup)
	if group == nil {
		return "", fmt.Errorf("meta: urlkit group %q not found", siteGroup)
	}

	route := "page"
	switch record.Category {
	case interfaces.CategoryBlog:
		route = "blog"
	case interfaces.CategoryProjects:
		route = "project"
	}

	return group.Builder(route).WithParam(slugRouteParam, record.Slug).Build()
}
