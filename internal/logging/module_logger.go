package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	rootModule     = "folio"
	contentModule  = "folio.content"
	metaModule     = "folio.meta"
	feedsModule    = "folio.feeds"
	scaffoldModule = "folio.scaffold"
)

const (
	fieldContentCategory = "category"
	fieldContentSlug     = "slug"
	fieldContentPath     = "content_path"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for the content loader.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// MetaLogger returns the logger namespace reserved for metadata generation.
func MetaLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, metaModule)
}

// FeedsLogger returns the logger namespace reserved for feed and sitemap builders.
func FeedsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, feedsModule)
}

// ScaffoldLogger returns the logger namespace reserved for scaffolding workflows.
func ScaffoldLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scaffoldModule)
}

// WithContentContext enriches the provided logger with common content fields
// such as category, slug, and source path. Empty values are ignored.
func WithContentContext(logger interfaces.Logger, category, slug, path string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		fields[fieldContentCategory] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldContentSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldContentPath] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
