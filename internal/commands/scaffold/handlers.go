package scaffoldcmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/scaffold"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// NewPostHandler executes NewPostCommand through the shared handler foundation.
type NewPostHandler struct {
	inner *commands.Handler[NewPostCommand]
}

// NewNewPostHandler constructs a handler wired to the provided scaffold service.
func NewNewPostHandler(service *scaffold.Service, logger interfaces.Logger, opts ...commands.HandlerOption[NewPostCommand]) *NewPostHandler {
	exec := func(ctx context.Context, msg NewPostCommand) error {
		_, err := service.NewPost(ctx, scaffold.PostInput{
			Title:   msg.Title,
			Tags:    msg.Tags,
			Excerpt: msg.Excerpt,
			Author:  msg.Author,
			Draft:   msg.Draft,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[NewPostCommand]{
		commands.WithLogger[NewPostCommand](logger),
		commands.WithOperation[NewPostCommand]("scaffold.new_post"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &NewPostHandler{
		inner: commands.NewHandler[NewPostCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[NewPostCommand].Execute.
func (h *NewPostHandler) Execute(ctx context.Context, msg NewPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// NewProjectHandler executes NewProjectCommand through the shared handler foundation.
type NewProjectHandler struct {
	inner *commands.Handler[NewProjectCommand]
}

// NewNewProjectHandler constructs a handler wired to the provided scaffold service.
func NewNewProjectHandler(service *scaffold.Service, logger interfaces.Logger, opts ...commands.HandlerOption[NewProjectCommand]) *NewProjectHandler {
	exec := func(ctx context.Context, msg NewProjectCommand) error {
		_, err := service.NewProject(ctx, scaffold.ProjectInput{
			Title:        msg.Title,
			Description:  msg.Description,
			Status:       interfaces.ProjectStatus(strings.TrimSpace(msg.Status)),
			Featured:     msg.Featured,
			Technologies: msg.Technologies,
			Repository:   msg.Repository,
			Demo:         msg.Demo,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[NewProjectCommand]{
		commands.WithLogger[NewProjectCommand](logger),
		commands.WithOperation[NewProjectCommand]("scaffold.new_project"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &NewProjectHandler{
		inner: commands.NewHandler[NewProjectCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[NewProjectCommand].Execute.
func (h *NewProjectHandler) Execute(ctx context.Context, msg NewProjectCommand) error {
	return h.inner.Execute(ctx, msg)
}
