package scaffoldcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	newPostMessageType    = "folio.scaffold.new_post"
	newProjectMessageType = "folio.scaffold.new_project"
)

// NewPostCommand scaffolds a blog post source file with populated front matter.
type NewPostCommand struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Excerpt string   `json:"excerpt,omitempty"`
	Author  string   `json:"author,omitempty"`
	Draft   bool     `json:"draft,omitempty"`
}

// Type implements command.Message.
func (NewPostCommand) Type() string { return newPostMessageType }

// Validate ensures the message carries a usable title before handlers execute.
func (cmd NewPostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Title, validation.Required, validation.By(nonBlank("folio.scaffold.new_post.title_required", "title is required"))),
	)
}

// NewProjectCommand scaffolds a project source file with populated front matter.
type NewProjectCommand struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Repository   string   `json:"repository,omitempty"`
	Demo         string   `json:"demo,omitempty"`
}

// Type implements command.Message.
func (NewProjectCommand) Type() string { return newProjectMessageType }

// Validate ensures the title is present and any supplied status belongs to
// the fixed project lifecycle enumeration.
func (cmd NewProjectCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Title, validation.Required, validation.By(nonBlank("folio.scaffold.new_project.title_required", "title is required"))),
		validation.Field(&cmd.Status, validation.By(func(value any) error {
			status := strings.TrimSpace(value.(string))
			if status == "" {
				return nil
			}
			if !interfaces.ProjectStatus(status).Valid() {
				return validation.NewError("folio.scaffold.new_project.status_invalid", "status must be one of Active, Planning, Paused, Completed")
			}
			return nil
		})),
	)
}

func nonBlank(code, message string) func(value any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
