package service

import (
	"context"
	"fmt"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// FirstVisitLabel is shown when no previous visit is recorded.
const FirstVisitLabel = "Welcome! This is your first visit."

// visitServiceImpl is the production implementation of VisitService.
type visitServiceImpl struct {
	repo repository.VisitorStateRepository
	now  func() time.Time
}

// NewVisitService creates a VisitService backed by the given visitor store.
func NewVisitService(repo repository.VisitorStateRepository) VisitService {
	return &visitServiceImpl{repo: repo, now: time.Now}
}

// Record implements the load-time ordering contract: read the previous
// last-visit first, then increment and persist. Reversing those steps would
// make a visitor's very first load report near-zero elapsed time.
func (s *visitServiceImpl) Record(ctx context.Context, visitorID string) (*model.VisitSummary, error) {
	previous, err := s.repo.GetLastVisit(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.GetVisitCount(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	count++

	now := s.now()
	if err := s.repo.SetVisitCount(ctx, visitorID, count); err != nil {
		return nil, err
	}
	if err := s.repo.SetLastVisit(ctx, visitorID, now); err != nil {
		return nil, err
	}

	return &model.VisitSummary{
		Count:          count,
		LastVisitLabel: FormatLastVisit(previous, now),
	}, nil
}

func (s *visitServiceImpl) Current(ctx context.Context, visitorID string) (*model.VisitRecord, error) {
	count, err := s.repo.GetVisitCount(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	last, err := s.repo.GetLastVisit(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return &model.VisitRecord{Count: count, LastVisit: last}, nil
}

func (s *visitServiceImpl) Reset(ctx context.Context, visitorID string) error {
	return s.repo.DeleteVisit(ctx, visitorID)
}

// FormatLastVisit buckets the elapsed time since the previous visit:
// under a minute, minutes, hours, then days. Exactly 1 of a unit is
// singular; anything else is plural. A nil previous visit yields the
// first-visit message.
func FormatLastVisit(previous *time.Time, now time.Time) string {
	if previous == nil {
		return FirstVisitLabel
	}

	elapsed := now.Sub(*previous)
	switch {
	case elapsed < time.Minute:
		return "less than a minute ago"
	case elapsed < time.Hour:
		return pluralize(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return pluralize(int(elapsed.Hours()), "hour")
	default:
		return pluralize(int(elapsed.Hours()/24), "day")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
