package service

import (
	"context"
	"strings"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// DefaultSendDelay stands in for the network round-trip a real mail/CRM
// integration would take. Tests construct the service with zero.
const DefaultSendDelay = 1500 * time.Millisecond

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo      repository.MessageRepository
	sendDelay time.Duration
	now       func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
// sendDelay is the simulated send duration (DefaultSendDelay in production).
func NewContactService(repo repository.MessageRepository, sendDelay time.Duration) ContactService {
	return &contactServiceImpl{repo: repo, sendDelay: sendDelay, now: time.Now}
}

// Submit waits out the simulated send, then persists the message. The delay
// respects ctx so an abandoned request does not write.
func (s *contactServiceImpl) Submit(ctx context.Context, sub ContactSubmission) (*model.ContactMessage, error) {
	if s.sendDelay > 0 {
		timer := time.NewTimer(s.sendDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	now := s.now().UTC()
	msg := &model.ContactMessage{
		ID:        now.UnixMilli(),
		Name:      strings.TrimSpace(sub.Name),
		Email:     strings.TrimSpace(sub.Email),
		Subject:   strings.TrimSpace(sub.Subject),
		Message:   strings.TrimSpace(sub.Message),
		CreatedAt: now,
		Read:      false,
	}
	if phone := strings.TrimSpace(sub.Phone); phone != "" {
		msg.Phone = &phone
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context, markAllRead bool) (*model.MessageList, error) {
	if markAllRead {
		if err := s.repo.MarkAllRead(ctx); err != nil {
			return nil, err
		}
	}

	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	return &model.MessageList{
		Total:    len(messages),
		Unread:   unread,
		Messages: messages,
	}, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *contactServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.UnreadCount(ctx)
}
