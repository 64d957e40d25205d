package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	folio "github.com/goliatone/go-folio"
)

func main() {
	if err := runFeeds(os.Args[1:]); err != nil {
		log.Fatalf("feeds: %v", err)
	}
}

func runFeeds(args []string) error {
	fs := flag.NewFlagSet("feeds", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the content root")
	outputDir := fs.String("output-dir", "public", "Directory receiving feed.xml and sitemap.xml")
	siteName := fs.String("site-name", "", "Site name embedded in the feed channel")
	baseURL := fs.String("base-url", "", "Absolute base URL for links")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := folio.DefaultConfig()
	cfg.Content.Dir = *contentDir
	if *siteName != "" {
		cfg.Site.Name = *siteName
	}
	if *baseURL != "" {
		cfg.Site.BaseURL = *baseURL
		if cfg.Routes != nil && len(cfg.Routes.Groups) > 0 {
			cfg.Routes.Groups[0].BaseURL = *baseURL
		}
	}

	module, err := folio.New(cfg)
	if err != nil {
		return fmt.Errorf("initialise folio module: %w", err)
	}

	builder := module.Feeds()
	if builder == nil {
		return fmt.Errorf("feed builder not configured; ensure Features.Feeds is enabled")
	}

	ctx := context.Background()

	rss, err := builder.RSS(ctx)
	if err != nil {
		return fmt.Errorf("build rss feed: %w", err)
	}
	sitemap, err := builder.Sitemap(ctx)
	if err != nil {
		return fmt.Errorf("build sitemap: %w", err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(*outputDir, "feed.xml"), []byte(rss), 0o644); err != nil {
		return fmt.Errorf("write feed.xml: %w", err)
	}
	if err := os.WriteFile(filepath.Join(*outputDir, "sitemap.xml"), []byte(sitemap), 0o644); err != nil {
		return fmt.Errorf("write sitemap.xml: %w", err)
	}

	fmt.Printf("wrote %s and %s\n", filepath.Join(*outputDir, "feed.xml"), filepath.Join(*outputDir, "sitemap.xml"))
	return nil
}
