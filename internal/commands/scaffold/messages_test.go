package scaffoldcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-folio/internal/scaffold"
)

func TestNewPostCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     NewPostCommand
		wantErr bool
	}{
		{"valid", NewPostCommand{Title: "Hello"}, false},
		{"missing title", NewPostCommand{}, true},
		{"blank title", NewPostCommand{Title: "   "}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestNewProjectCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     NewProjectCommand
		wantErr bool
	}{
		{"valid without status", NewProjectCommand{Title: "Tool"}, false},
		{"valid with status", NewProjectCommand{Title: "Tool", Status: "Active"}, false},
		{"missing title", NewProjectCommand{Status: "Active"}, true},
		{"invalid status", NewProjectCommand{Title: "Tool", Status: "Shipped"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestNewPostHandlerWritesFile(t *testing.T) {
	dir := t.TempDir()
	service := scaffold.NewService(scaffold.Config{Dir: dir})
	handler := NewNewPostHandler(service, nil)

	err := handler.Execute(context.Background(), NewPostCommand{
		Title: "Handler Driven Post",
		Tags:  []string{"go"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	target := filepath.Join(dir, "blog", "handler-driven-post.md")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected scaffolded file at %s: %v", target, err)
	}
}

func TestNewPostHandlerRejectsInvalidMessage(t *testing.T) {
	dir := t.TempDir()
	service := scaffold.NewService(scaffold.Config{Dir: dir})
	handler := NewNewPostHandler(service, nil)

	if err := handler.Execute(context.Background(), NewPostCommand{}); err == nil {
		t.Fatal("expected validation failure before any file write")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d entries", len(entries))
	}
}

func TestNewProjectHandlerWritesFile(t *testing.T) {
	dir := t.TempDir()
	service := scaffold.NewService(scaffold.Config{Dir: dir})
	handler := NewNewProjectHandler(service, nil)

	err := handler.Execute(context.Background(), NewProjectCommand{
		Title:  "Handler Driven Project",
		Status: "Active",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	target := filepath.Join(dir, "projects", "handler-driven-project.md")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected scaffolded file at %s: %v", target, err)
	}
}
