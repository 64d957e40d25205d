package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCategoryInvalid    = errors.New("content: category is not recognised")
	ErrRecordNotFound     = errors.New("content: record not found")
	ErrFrontMatterInvalid = errors.New("content: front matter is invalid")
	ErrSlugRequired       = errors.New("content: slug is required")
	ErrSlugInvalid        = errors.New("content: slug contains invalid characters")
)

// RecordNotFoundError captures single-item lookups for slugs that have no
// corresponding source file.
type RecordNotFoundError struct {
	Category string
	Slug     string
}

func (e *RecordNotFoundError) Error() string {
	if e == nil {
		return ErrRecordNotFound.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: %s/%s", ErrRecordNotFound.Error(), e.Category, slug)
	}
	return ErrRecordNotFound.Error()
}

func (e *RecordNotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// ParseError captures malformed front matter for a single source file. The
// record is treated as unavailable; listings skip it, lookups surface this error.
type ParseError struct {
	Category string
	Slug     string
	Err      error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s/%s: %v", ErrFrontMatterInvalid.Error(), e.Category, e.Slug, e.Err)
	}
	return fmt.Sprintf("%s: %s/%s", ErrFrontMatterInvalid.Error(), e.Category, e.Slug)
}

func (e *ParseError) Unwrap() error {
	return ErrFrontMatterInvalid
}
