package service

import (
	"context"
	"errors"
	"testing"

	"github.com/folio/backend/internal/model"
)

func testProjects() []*model.Project {
	return []*model.Project{
		{ID: 1, Title: "Shopfront", Category: "web", Description: "An online store", Tags: []string{"react", "stripe"}},
		{ID: 2, Title: "TrailTracker", Category: "mobile", Description: "Hiking companion", Tags: []string{"flutter", "gps"}},
		{ID: 3, Title: "Rebrand", Category: "design", Description: "Visual identity refresh", Tags: []string{"branding"}},
		{ID: 4, Title: "Pulseboard", Category: "web", Description: "Analytics dashboard", Tags: []string{"charts", "websockets"}},
	}
}

func TestGalleryService_FilterByCategory_All(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	got, err := svc.FilterByCategory(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected all 4 projects, got %d", len(got))
	}
	for i, want := range []int{1, 2, 3, 4} {
		if got[i].ID != want {
			t.Errorf("expected original order, position %d has id %d", i, got[i].ID)
		}
	}
}

func TestGalleryService_FilterByCategory_ExactMatch(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	got, err := svc.FilterByCategory(context.Background(), "web")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Errorf("expected web projects [1 4] in order, got %v", ids(got))
	}
}

func TestGalleryService_FilterByCategory_Unknown(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	_, err := svc.FilterByCategory(context.Background(), "games")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGalleryService_Search_TitleDescriptionAndTags(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())
	ctx := context.Background()

	// Title match, case-insensitive.
	got, err := svc.Search(ctx, "all", "SHOP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected [1] for title match, got %v", ids(got))
	}

	// Description match.
	got, _ = svc.Search(ctx, "all", "hiking")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected [2] for description match, got %v", ids(got))
	}

	// Tag match.
	got, _ = svc.Search(ctx, "all", "websockets")
	if len(got) != 1 || got[0].ID != 4 {
		t.Errorf("expected [4] for tag match, got %v", ids(got))
	}
}

func TestGalleryService_Search_WithinActiveCategoryOnly(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	// "a" appears widely, but only design projects may be returned.
	got, err := svc.Search(context.Background(), "design", "re")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range got {
		if p.Category != "design" {
			t.Errorf("search leaked outside active category: got project %d (%s)", p.ID, p.Category)
		}
	}
}

func TestGalleryService_Search_EmptyQueryRevertsToSubset(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	for _, q := range []string{"", "   ", "\t"} {
		got, err := svc.Search(context.Background(), "web", q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected full web subset for query %q, got %v", q, ids(got))
		}
	}
}

func TestGalleryService_Search_TrimsQuery(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	got, err := svc.Search(context.Background(), "all", "  shopfront  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected trimmed query to match [1], got %v", ids(got))
	}
}

func TestGalleryService_Search_NoMatches(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	got, err := svc.Search(context.Background(), "all", "zzzzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestGalleryService_Counts(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	counts := svc.Counts(context.Background())
	want := map[string]int{"all": 4, "web": 2, "mobile": 1, "design": 1}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("expected %s=%d, got %d", cat, n, counts[cat])
		}
	}
}

func TestGalleryService_GetByID(t *testing.T) {
	svc := NewGalleryServiceWith(testProjects())

	p, err := svc.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Rebrand" {
		t.Errorf("expected Rebrand, got %q", p.Title)
	}

	_, err = svc.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestGalleryService_BuiltinCatalog(t *testing.T) {
	svc := NewGalleryService()
	ctx := context.Background()

	all := svc.List(ctx)
	if len(all) != 6 {
		t.Fatalf("expected 6 catalog projects, got %d", len(all))
	}

	seen := map[int]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if !model.ValidCategory(p.Category) || p.Category == model.CategoryAll {
			t.Errorf("project %d has invalid category %q", p.ID, p.Category)
		}
	}

	counts := svc.Counts(ctx)
	if counts["all"] != 6 {
		t.Errorf("expected all=6, got %d", counts["all"])
	}
	if counts["web"]+counts["mobile"]+counts["design"] != 6 {
		t.Errorf("category counts do not sum to total: %v", counts)
	}
}

func ids(projects []*model.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
