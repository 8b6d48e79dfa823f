package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

// ClockHandler serves the header clock: a single formatted reading or a
// once-per-second server-sent event stream. The visitor's stored 12/24-hour
// preference selects the format.
type ClockHandler struct {
	clockService service.ClockService
	prefService  service.PreferenceService
}

// NewClockHandler creates a ClockHandler with the given services.
func NewClockHandler(clockService service.ClockService, prefService service.PreferenceService) *ClockHandler {
	return &ClockHandler{clockService: clockService, prefService: prefService}
}

// format resolves the clock format for the request: an explicit format query
// param wins, otherwise the visitor's stored preference.
func (h *ClockHandler) format(r *http.Request) (string, error) {
	if f := r.URL.Query().Get("format"); f == model.ClockFormat12 || f == model.ClockFormat24 {
		return f, nil
	}
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		return model.ClockFormat24, nil
	}
	return h.prefService.ClockFormat(r.Context(), visitorID)
}

// Get handles GET /api/clock.
func (h *ClockHandler) Get(w http.ResponseWriter, r *http.Request) {
	format, err := h.clockFormatOr500(w, r)
	if err != nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.clockService.Render(time.Now(), format))
}

// Stream handles GET /api/clock/stream.
// Server-sent events; one tick event per second until the client disconnects.
func (h *ClockHandler) Stream(w http.ResponseWriter, r *http.Request) {
	format, err := h.clockFormatOr500(w, r)
	if err != nil {
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

	h.clockService.Stream(r.Context(), format, func(render *model.ClockRender) {
		data, err := json.Marshal(render)
		if err != nil {
			return
		}
		if _, err := w.Write([]byte("event: tick\ndata: " + string(data) + "\n\n")); err != nil {
			return
		}
		flusher.Flush()
	})
}

func (h *ClockHandler) clockFormatOr500(w http.ResponseWriter, r *http.Request) (string, error) {
	format, err := h.format(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "format_failed"})
		return "", err
	}
	return format, nil
}
