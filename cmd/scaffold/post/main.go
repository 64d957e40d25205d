package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-folio/cmd/scaffold/internal/bootstrap"
	scaffoldcmd "github.com/goliatone/go-folio/internal/commands/scaffold"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runNewPost(os.Args[1:]); err != nil {
		log.Fatalf("scaffold post: %v", err)
	}
}

func runNewPost(args []string) error {
	fs := flag.NewFlagSet("scaffold-post", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the content root")
	title := fs.String("title", "", "Post title (prompted when omitted)")
	tags := fs.String("tags", "", "Comma separated list of tags")
	excerpt := fs.String("excerpt", "", "Explicit excerpt for the post")
	author := fs.String("author", "", "Author recorded in front matter")
	draft := fs.Bool("draft", false, "Create the post with draft status")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Author:     *author,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	promptedTitle, err := bootstrap.Prompt(os.Stdin, os.Stdout, "Post title", *title)
	if err != nil {
		return fmt.Errorf("read title: %w", err)
	}

	handler := scaffoldcmd.NewNewPostHandler(module.Scaffolder, module.Logger)
	cmd := scaffoldcmd.NewPostCommand{
		Title:   promptedTitle,
		Tags:    bootstrap.SplitList(*tags),
		Excerpt: *excerpt,
		Author:  *author,
		Draft:   *draft,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute new post command: %w", err)
	}

	fmt.Println("post scaffolded")
	return nil
}
