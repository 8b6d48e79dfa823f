package service

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
)

// ErrUnknownCategory is returned for a category outside all/web/mobile/design.
var ErrUnknownCategory = errors.New("unknown category")

// ErrProjectNotFound is returned when no project has the requested ID.
var ErrProjectNotFound = errors.New("project not found")

// GalleryService exposes the static project catalog: listing, category
// filtering, full-text search and detail lookup.
type GalleryService interface {
	// List returns every project in presentation order.
	List(ctx context.Context) []*model.Project

	// FilterByCategory returns the projects of one category, or all of them
	// for "all", preserving presentation order.
	FilterByCategory(ctx context.Context, category string) ([]*model.Project, error)

	// Search returns the projects of the given category whose title,
	// description or any tag contains the query, case-insensitively. The
	// query is whitespace-trimmed; an empty query returns the full category
	// subset.
	Search(ctx context.Context, category, query string) ([]*model.Project, error)

	// Counts returns per-category project totals, including "all".
	Counts(ctx context.Context) map[string]int

	// GetByID returns the project with the given ID or ErrProjectNotFound.
	GetByID(ctx context.Context, id int) (*model.Project, error)
}
