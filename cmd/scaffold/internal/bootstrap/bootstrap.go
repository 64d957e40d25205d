package bootstrap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	folio "github.com/goliatone/go-folio"
	"github.com/goliatone/go-folio/internal/di"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Options captures configuration for scaffold CLI bootstraps.
type Options struct {
	ContentDir     string
	Author         string
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the folio module and the configured scaffolder/logger.
type Module struct {
	Module     *folio.Module
	Scaffolder *folio.Scaffolder
	Logger     interfaces.Logger
}

// BuildModule constructs a folio module configured for scaffolding operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := folio.DefaultConfig()
	cfg.Features.Scaffold = true
	if trimmed := strings.TrimSpace(opts.ContentDir); trimmed != "" {
		cfg.Content.Dir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Author); trimmed != "" {
		cfg.Scaffold.DefaultAuthor = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	// Scaffolding often targets a brand new site, so the content root may not
	// exist yet. The loader refuses to boot without it.
	if err := os.MkdirAll(cfg.Content.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content root %s: %w", cfg.Content.Dir, err)
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := folio.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise folio module: %w", err)
	}

	scaffolder := module.Scaffold()
	if scaffolder == nil {
		return nil, fmt.Errorf("scaffold service not configured; ensure Features.Scaffold is enabled")
	}

	return &Module{
		Module:     module,
		Scaffolder: scaffolder,
		Logger:     logging.ScaffoldLogger(module.Logger()),
	}, nil
}

// Prompt reads one line of input when value is empty, returning the flag value
// untouched otherwise. Scaffold CLIs use it to fall back to interactive input.
func Prompt(in io.Reader, out io.Writer, label, value string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}
	if _, err := fmt.Fprintf(out, "%s: ", label); err != nil {
		return "", err
	}
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SplitList turns a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
