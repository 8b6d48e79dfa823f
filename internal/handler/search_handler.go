package handler

import (
	"encoding/json"
	"net/http"

	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

// SearchHandler exposes the live-search sessions: keystrokes and category
// switches go in over plain POSTs, coalesced result sets come back out over a
// server-sent event stream. Sessions are keyed by visitor ID.
type SearchHandler struct {
	live *service.LiveSearch
}

// NewSearchHandler creates a SearchHandler over the given session manager.
func NewSearchHandler(live *service.LiveSearch) *SearchHandler {
	return &SearchHandler{live: live}
}

// typeRequest is the expected JSON body for POST /api/projects/search/input.
type typeRequest struct {
	Query string `json:"query"`
}

// Input handles POST /api/projects/search/input.
// Each call feeds the latest query text; the search itself only runs once the
// visitor stops typing.
func (h *SearchHandler) Input(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	var req typeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	h.live.Session(visitorID).Type(req.Query)
	w.WriteHeader(http.StatusAccepted)
}

// filterRequest is the expected JSON body for POST /api/projects/search/filter.
type filterRequest struct {
	Category string `json:"category"`
}

// Filter handles POST /api/projects/search/filter.
// Switching category bypasses the typing delay and emits results immediately.
func (h *SearchHandler) Filter(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.live.Session(visitorID).Filter(req.Category); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown_category"})
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Stream handles GET /api/projects/search/stream.
// Server-sent events; each event's data is the JSON array of matching
// projects for the most recent settled query.
func (h *SearchHandler) Stream(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	session := h.live.Session(visitorID)
	for {
		select {
		case <-r.Context().Done():
			return
		case projects := <-session.Results():
			data, err := json.Marshal(projects)
			if err != nil {
				continue
			}
			if _, err := w.Write([]byte("event: results\ndata: " + string(data) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// Close handles DELETE /api/projects/search.
// Tears down the visitor's session and drops any pending query.
func (h *SearchHandler) Close(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	h.live.Close(visitorID)
	w.WriteHeader(http.StatusNoContent)
}
