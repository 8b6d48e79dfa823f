package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// VisitService tracks per-visitor page-load tallies.
type VisitService interface {
	// Record registers one page load: it captures the previous last-visit
	// timestamp, then increments and persists the count and the new
	// timestamp. The returned label describes elapsed time since the
	// PRE-increment visit, so a first load never reads as "less than a
	// minute ago". Call exactly once per page load.
	Record(ctx context.Context, visitorID string) (*model.VisitSummary, error)

	// Current returns the persisted record without mutating it.
	Current(ctx context.Context, visitorID string) (*model.VisitRecord, error)

	// Reset deletes the count and the last-visit timestamp.
	Reset(ctx context.Context, visitorID string) error
}
