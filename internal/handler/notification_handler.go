package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/notify"
	"github.com/folio/backend/pkg/auth"
)

// NotificationHandler exposes the requesting visitor's toast feed.
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler creates a NotificationHandler over the given hub.
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// notificationsResponse is the JSON response for GET /api/notifications.
type notificationsResponse struct {
	Notifications []*notify.Toast `json:"notifications"`
}

// List handles GET /api/notifications.
// Returns the visitor's live toasts in push order, mid-fade ones included.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(notificationsResponse{Notifications: h.hub.For(visitorID).Active()})
}

// Dismiss handles DELETE /api/notifications/{id}.
// Only reaches the visitor's own feed; safe to call for toasts that already
// auto-dismissed.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := auth.VisitorIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no_visitor"})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	h.hub.For(visitorID).Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}
