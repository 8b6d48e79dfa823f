package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

// PreferenceHandler serves the visitor's display preferences.
type PreferenceHandler struct {
	prefService  service.PreferenceService
	clockService service.ClockService
}

// NewPreferenceHandler creates a PreferenceHandler with the given services.
// The clock service supplies the fresh render a format toggle responds with.
func NewPreferenceHandler(prefService service.PreferenceService, clockService service.ClockService) *PreferenceHandler {
	return &PreferenceHandler{prefService: prefService, clockService: clockService}
}

// themeResponse is the JSON shape for theme reads and toggles. Stored is
// false while the visitor is still on the OS-derived fallback.
type themeResponse struct {
	Theme  string `json:"theme"`
	Stored bool   `json:"stored"`
}

// GetTheme handles GET /api/preferences/theme.
// The hint query param carries the client's OS color-scheme ("light"/"dark")
// and only applies while no preference is stored.
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	theme, stored, err := h.prefService.Theme(r.Context(), visitorID, r.URL.Query().Get("hint"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(themeResponse{Theme: theme, Stored: stored})
}

// setThemeRequest is the expected JSON body for PUT /api/preferences/theme.
type setThemeRequest struct {
	Theme string `json:"theme"`
}

// SetTheme handles PUT /api/preferences/theme.
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.prefService.SetTheme(r.Context(), visitorID, req.Theme); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_theme"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "set_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(themeResponse{Theme: req.Theme, Stored: true})
}

// ToggleTheme handles POST /api/preferences/theme/toggle.
func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	theme, err := h.prefService.ToggleTheme(r.Context(), visitorID, r.URL.Query().Get("hint"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "toggle_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(themeResponse{Theme: theme, Stored: true})
}

// clockFormatResponse is the JSON shape for clock-format reads and toggles.
// Render is set on toggles so the client repaints without a second request.
type clockFormatResponse struct {
	Format string             `json:"format"`
	Render *model.ClockRender `json:"render,omitempty"`
}

// GetClockFormat handles GET /api/preferences/clock-format.
func (h *PreferenceHandler) GetClockFormat(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	format, err := h.prefService.ClockFormat(r.Context(), visitorID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clockFormatResponse{Format: format})
}

// ToggleClockFormat handles POST /api/preferences/clock-format/toggle.
func (h *PreferenceHandler) ToggleClockFormat(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	format, err := h.prefService.ToggleClockFormat(r.Context(), visitorID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "toggle_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clockFormatResponse{
		Format: format,
		Render: h.clockService.Render(time.Now(), format),
	})
}
