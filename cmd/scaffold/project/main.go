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
	if err := runNewProject(os.Args[1:]); err != nil {
		log.Fatalf("scaffold project: %v", err)
	}
}

func runNewProject(args []string) error {
	fs := flag.NewFlagSet("scaffold-project", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the content root")
	title := fs.String("title", "", "Project title (prompted when omitted)")
	description := fs.String("description", "", "Short project description")
	status := fs.String("status", "Planning", "Project status (Active, Planning, Paused, Completed)")
	featured := fs.Bool("featured", false, "Mark the project as featured")
	technologies := fs.String("technologies", "", "Comma separated technology list")
	repository := fs.String("repository", "", "Source repository URL")
	demo := fs.String("demo", "", "Live demo URL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	promptedTitle, err := bootstrap.Prompt(os.Stdin, os.Stdout, "Project title", *title)
	if err != nil {
		return fmt.Errorf("read title: %w", err)
	}

	handler := scaffoldcmd.NewNewProjectHandler(module.Scaffolder, module.Logger)
	cmd := scaffoldcmd.NewProjectCommand{
		Title:        promptedTitle,
		Description:  *description,
		Status:       *status,
		Featured:     *featured,
		Technologies: bootstrap.SplitList(*technologies),
		Repository:   *repository,
		Demo:         *demo,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute new project command: %w", err)
	}

	fmt.Println("project scaffolded")
	return nil
}
