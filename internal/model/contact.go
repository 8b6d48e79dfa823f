package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID is the creation time in Unix milliseconds; creation-time granularity is
// assumed sufficient for uniqueness. Phone is nil when the sender left the
// optional field empty.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// MessageList is what the admin panel renders: totals plus the newest-first
// message list.
type MessageList struct {
	Total    int               `json:"total"`
	Unread   int               `json:"unread"`
	Messages []*ContactMessage `json:"messages"`
}
