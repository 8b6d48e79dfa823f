package handler

import (
	"encoding/json"
	"net/http"

	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

// VisitHandler tracks the per-visitor page-load counter.
type VisitHandler struct {
	visitService service.VisitService
}

// NewVisitHandler creates a VisitHandler with the given service.
func NewVisitHandler(visitService service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// Record handles POST /api/visits.
// Called once per page load; increments the counter and returns the
// since-last-visit label computed from the state before this load.
func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	summary, err := h.visitService.Record(r.Context(), visitorID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "record_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}

// Get handles GET /api/visits.
// Read-only view of the stored counter, without registering a visit.
func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	record, err := h.visitService.Current(r.Context(), visitorID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(record)
}

// Reset handles DELETE /api/visits.
// Requires confirm=true; clears the count and last-visit timestamp.
func (h *VisitHandler) Reset(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "confirmation_required"})
		return
	}

	if err := h.visitService.Reset(r.Context(), visitorID); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reset_failed"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
