package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ContactSubmission is a validated contact-form payload.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService defines the business logic for contact messages.
type ContactService interface {
	// Submit performs the (simulated) send and persists the message. The
	// stored message gets a creation-time ID, read=false, and an absent
	// phone normalized to nil rather than an empty string.
	Submit(ctx context.Context, sub ContactSubmission) (*model.ContactMessage, error)

	// List returns the full message list newest-first with totals. When
	// markAllRead is true every message is flipped to read first (used when
	// the admin panel opens).
	List(ctx context.Context, markAllRead bool) (*model.MessageList, error)

	// Delete removes one message by ID.
	Delete(ctx context.Context, id int64) error

	// Clear removes every message.
	Clear(ctx context.Context) error

	// UnreadCount returns the unread-badge value.
	UnreadCount(ctx context.Context) (int, error)
}
