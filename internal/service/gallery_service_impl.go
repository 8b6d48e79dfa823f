package service

import (
	"context"
	"strings"

	"github.com/folio/backend/internal/model"
)

// galleryServiceImpl serves the compiled-in catalog.
type galleryServiceImpl struct {
	projects []*model.Project
}

// NewGalleryService creates a GalleryService over the built-in catalog.
func NewGalleryService() GalleryService {
	return &galleryServiceImpl{projects: catalog}
}

// NewGalleryServiceWith creates a GalleryService over an explicit project
// list. Used by tests.
func NewGalleryServiceWith(projects []*model.Project) GalleryService {
	return &galleryServiceImpl{projects: projects}
}

func (s *galleryServiceImpl) List(ctx context.Context) []*model.Project {
	out := make([]*model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *galleryServiceImpl) FilterByCategory(ctx context.Context, category string) ([]*model.Project, error) {
	if !model.ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	if category == model.CategoryAll {
		return s.List(ctx), nil
	}
	var out []*model.Project
	for _, p := range s.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *galleryServiceImpl) Search(ctx context.Context, category, query string) ([]*model.Project, error) {
	subset, err := s.FilterByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return subset, nil
	}

	var out []*model.Project
	for _, p := range subset {
		if projectMatches(p, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// projectMatches reports whether term occurs in the title, the description or
// any tag. term must already be lowercased.
func projectMatches(p *model.Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (s *galleryServiceImpl) Counts(ctx context.Context) map[string]int {
	counts := map[string]int{
		model.CategoryAll:    len(s.projects),
		model.CategoryWeb:    0,
		model.CategoryMobile: 0,
		model.CategoryDesign: 0,
	}
	for _, p := range s.projects {
		counts[p.Category]++
	}
	return counts
}

func (s *galleryServiceImpl) GetByID(ctx context.Context, id int) (*model.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProjectNotFound
}
