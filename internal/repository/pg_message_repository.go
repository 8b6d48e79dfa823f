package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type MessageRepository interface {
	// Save inserts a new message. The caller supplies ID and CreatedAt.
	Save(ctx context.Context, msg *model.ContactMessage) error

	// List returns all messages newest-first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// MarkAllRead flips every message's read flag to true.
	MarkAllRead(ctx context.Context) error

	// Delete removes the message with the given ID. Returns ErrNotFound when
	// no such message exists.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every message.
	DeleteAll(ctx context.Context) error

	// UnreadCount returns the number of unread messages.
	UnreadCount(ctx context.Context) (int, error)
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Ensure PgMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new contact_messages row. Phone is stored as NULL when the
// sender left the optional field empty.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, subject, message, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.Read, msg.CreatedAt,
	)
	return err
}

// List returns all messages ordered newest-first. IDs are creation timestamps,
// so id DESC is creation order reversed.
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, subject, message, read, created_at
		 FROM contact_messages
		 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// MarkAllRead flips every unread message to read.
func (r *PgMessageRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `UPDATE contact_messages SET read = TRUE WHERE read = FALSE`)
	return err
}

// Delete removes exactly one message by ID.
func (r *PgMessageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every message.
func (r *PgMessageRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_messages`)
	return err
}

// UnreadCount returns the number of messages with read = FALSE.
func (r *PgMessageRepository) UnreadCount(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
