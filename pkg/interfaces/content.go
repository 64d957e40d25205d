package interfaces

import (
	"context"
	"time"
)

// Category identifies a content directory. Each category keeps its own
// front matter schema and listing order.
type Category string

const (
	CategoryBlog     Category = "blog"
	CategoryProjects Category = "projects"
	CategoryPages    Category = "pages"
)

// Valid reports whether the category is one the loader knows how to decode.
func (c Category) Valid() bool {
	switch c {
	case CategoryBlog, CategoryProjects, CategoryPages:
		return true
	}
	return false
}

// Publication states for blog records. Only published records are externally
// visible; drafts stay retrievable by direct slug lookup.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// ProjectStatus enumerates the lifecycle states a project can be in.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectPaused    ProjectStatus = "Paused"
	ProjectCompleted ProjectStatus = "Completed"
)

// Valid reports whether the status belongs to the fixed enumeration.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPlanning, ProjectPaused, ProjectCompleted:
		return true
	}
	return false
}

// Rank returns the ordinal used when ordering project listings. Lower ranks
// list first: Active, Planning, Paused, Completed. Unknown statuses sort last.
func (s ProjectStatus) Rank() int {
	switch s {
	case ProjectActive:
		return 0
	case ProjectPlanning:
		return 1
	case ProjectPaused:
		return 2
	case ProjectCompleted:
		return 3
	}
	return 4
}

// BlogMetadata is the closed front matter schema for blog posts.
type BlogMetadata struct {
	Title    string    `yaml:"title" json:"title"`
	Date     time.Time `yaml:"date" json:"date"`
	Updated  time.Time `yaml:"updated" json:"updated,omitempty"`
	Status   string    `yaml:"status" json:"status"`
	Tags     []string  `yaml:"tags" json:"tags,omitempty"`
	Excerpt  string    `yaml:"excerpt" json:"excerpt,omitempty"`
	Author   string    `yaml:"author" json:"author,omitempty"`
	Images   []string  `yaml:"images" json:"images,omitempty"`
	MetaInfo PageMeta  `yaml:"meta" json:"meta,omitempty"`
}

// ProjectMetadata is the closed front matter schema for portfolio projects.
type ProjectMetadata struct {
	Title        string        `yaml:"title" json:"title"`
	Description  string        `yaml:"description" json:"description,omitempty"`
	Status       ProjectStatus `yaml:"status" json:"status"`
	Featured     bool          `yaml:"featured" json:"featured"`
	Technologies []string      `yaml:"technologies" json:"technologies,omitempty"`
	Images       []string      `yaml:"images" json:"images,omitempty"`
	Repository   string        `yaml:"repository" json:"repository,omitempty"`
	Demo         string        `yaml:"demo" json:"demo,omitempty"`
	Date         time.Time     `yaml:"date" json:"date,omitempty"`
	MetaInfo     PageMeta      `yaml:"meta" json:"meta,omitempty"`
}

// PageMetadata is the closed front matter schema for static pages.
type PageMetadata struct {
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description,omitempty"`
	Updated     time.Time `yaml:"updated" json:"updated,omitempty"`
	Images      []string  `yaml:"images" json:"images,omitempty"`
	MetaInfo    PageMeta  `yaml:"meta" json:"meta,omitempty"`
}

// PageMeta carries explicit SEO overrides supplied through front matter.
// Every field is optional; the metadata generator falls back to derived
// values when a field is empty.
type PageMeta struct {
	Title       string `yaml:"title" json:"title,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Record is the loaded form of one content file. Exactly one of the
// category metadata pointers is set, matching Category.
type Record struct {
	Slug         string
	Category     Category
	FilePath     string
	Body         []byte
	BodyHTML     []byte
	Blog         *BlogMetadata
	Project      *ProjectMetadata
	Page         *PageMetadata
	Excerpt      string
	WordCount    int
	ReadingTime  int
	LastModified time.Time
}

// Title returns the record's front matter title regardless of category.
func (r *Record) Title() string {
	if r == nil {
		return ""
	}
	switch {
	case r.Blog != nil:
		return r.Blog.Title
	case r.Project != nil:
		return r.Project.Title
	case r.Page != nil:
		return r.Page.Title
	}
	return ""
}

// Draft reports whether the record is a draft blog post. Projects and pages
// never count as drafts.
func (r *Record) Draft() bool {
	return r != nil && r.Blog != nil && r.Blog.Status == StatusDraft
}

// Date returns the primary date associated with the record, or the zero time
// when the category carries none.
func (r *Record) Date() time.Time {
	if r == nil {
		return time.Time{}
	}
	switch {
	case r.Blog != nil:
		return r.Blog.Date
	case r.Project != nil:
		return r.Project.Date
	case r.Page != nil:
		return r.Page.Updated
	}
	return time.Time{}
}

// Images returns the record's front matter image list.
func (r *Record) Images() []string {
	if r == nil {
		return nil
	}
	switch {
	case r.Blog != nil:
		return r.Blog.Images
	case r.Project != nil:
		return r.Project.Images
	case r.Page != nil:
		return r.Page.Images
	}
	return nil
}

// Meta returns the explicit SEO overrides attached to the record.
func (r *Record) Meta() PageMeta {
	if r == nil {
		return PageMeta{}
	}
	switch {
	case r.Blog != nil:
		return r.Blog.MetaInfo
	case r.Project != nil:
		return r.Project.MetaInfo
	case r.Page != nil:
		return r.Page.MetaInfo
	}
	return PageMeta{}
}

// ListOptions tunes collection listings.
type ListOptions struct {
	// IncludeDrafts keeps draft blog records in the listing. Defaults to the
	// published-only view consumers render publicly.
	IncludeDrafts bool
}

// ContentService loads content records from the configured content root.
// Every call re-reads the filesystem; records are immutable once returned.
type ContentService interface {
	Get(ctx context.Context, category Category, slug string) (*Record, error)
	List(ctx context.Context, category Category, opts ListOptions) ([]*Record, error)
	ListSlugs(ctx context.Context, category Category) ([]string, error)
}

// MetaBundle is the page-embedding metadata derived from one record. Every
// field is populated; generation cannot fail.
type MetaBundle struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Canonical   string         `json:"canonical"`
	Image       string         `json:"image"`
	Indexable   bool           `json:"indexable"`
	LinkedData  map[string]any `json:"linked_data"`
}

// MetadataGenerator derives a MetaBundle from a loaded record.
type MetadataGenerator interface {
	Generate(ctx context.Context, record *Record) MetaBundle
}
