package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/notify"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/internal/validate"
	"github.com/folio/backend/pkg/auth"
)

// ContactHandler handles contact form validation, submission and the admin
// message panel.
type ContactHandler struct {
	contactService service.ContactService
	notifications  *notify.Hub
}

// NewContactHandler creates a ContactHandler with the given service. The
// notification hub receives a toast per submission outcome, on the feed of
// the visitor who made the request.
func NewContactHandler(contactService service.ContactService, notifications *notify.Hub) *ContactHandler {
	return &ContactHandler{contactService: contactService, notifications: notifications}
}

// toast pushes onto the requesting visitor's feed. Requests without a
// visitor identity get no toast.
func (h *ContactHandler) toast(r *http.Request, kind notify.Kind, title, message string) {
	if visitorID, ok := auth.VisitorIDFromContext(r.Context()); ok {
		h.notifications.For(visitorID).Push(kind, title, message)
	}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitErrorResponse reports per-field validation failures.
type submitErrorResponse struct {
	Error  string                     `json:"error"`
	Fields map[string]validate.Result `json:"fields"`
}

// Submit handles POST /api/contact.
// The whole form is validated field by field; any failure returns 400 with
// every field's result so the client can highlight all of them at once.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	ok, fields := validate.Form(map[string]string{
		validate.FieldName:    req.Name,
		validate.FieldEmail:   req.Email,
		validate.FieldPhone:   req.Phone,
		validate.FieldSubject: req.Subject,
		validate.FieldMessage: req.Message,
	})
	if !ok {
		h.toast(r, notify.Error, "Validation failed", "Please correct the highlighted fields.")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitErrorResponse{
			Error:  "validation_failed",
			Fields: fields,
		})
		return
	}

	msg, err := h.contactService.Submit(r.Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.toast(r, notify.Error, "Send failed", "Something went wrong. Please try again.")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	h.toast(r, notify.Success, "Message sent", "Thanks for reaching out. I will get back to you soon.")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(msg)
}

// ValidateField handles GET /api/contact/validate.
// Used for as-you-type feedback on a single field.
func (h *ContactHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")
	if field == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "field_required"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(validate.Field(field, value))
}

// counterResponse is the JSON response for the character counter.
type counterResponse struct {
	Length int    `json:"length"`
	Max    int    `json:"max"`
	State  string `json:"state"`
}

// Counter handles GET /api/contact/counter.
func (h *ContactHandler) Counter(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil || length < 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_length"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(counterResponse{
		Length: length,
		Max:    validate.MaxMessageLength,
		State:  validate.CounterState(length),
	})
}

// AdminList handles GET /api/admin/messages (admin-only).
// Passing markRead=true flips every message to read, mirroring the badge
// clearing when the inbox is opened.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	markRead := r.URL.Query().Get("markRead") == "true"
	list, err := h.contactService.List(r.Context(), markRead)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Delete handles DELETE /api/admin/messages/{id} (admin-only).
// Requires confirm=true, matching the destructive-action confirmation flow.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "confirmation_required"})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	h.toast(r, notify.Success, "Message deleted", "")
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/admin/messages (admin-only).
// Requires confirm=true; removes every stored message.
func (h *ContactHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "confirmation_required"})
		return
	}

	if err := h.contactService.Clear(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "clear_failed"})
		return
	}

	h.toast(r, notify.Success, "Inbox cleared", "All messages were deleted.")
	w.WriteHeader(http.StatusNoContent)
}

// UnreadCount handles GET /api/admin/messages/unread-count (admin-only).
func (h *ContactHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	count, err := h.contactService.UnreadCount(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "count_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"unread": count})
}
