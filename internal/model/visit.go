package model

import "time"

// VisitRecord is a visitor's persisted tally. Count is monotonically
// non-decreasing except on explicit reset. LastVisit is nil before the
// first recorded visit.
type VisitRecord struct {
	Count     int        `json:"count"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
}

// VisitSummary is returned when a page load is recorded. LastVisitLabel is
// computed from the pre-increment state so a visitor's very first load reads
// as a first visit rather than "less than a minute ago".
type VisitSummary struct {
	Count          int    `json:"count"`
	LastVisitLabel string `json:"last_visit_label"`
}
