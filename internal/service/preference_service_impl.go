package service

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ErrInvalidTheme is returned for theme values other than "light"/"dark".
var ErrInvalidTheme = errors.New("invalid theme")

// preferenceServiceImpl is the production implementation of PreferenceService.
type preferenceServiceImpl struct {
	repo repository.VisitorStateRepository
}

// NewPreferenceService creates a PreferenceService backed by the given
// visitor store.
func NewPreferenceService(repo repository.VisitorStateRepository) PreferenceService {
	return &preferenceServiceImpl{repo: repo}
}

func (s *preferenceServiceImpl) Theme(ctx context.Context, visitorID, systemHint string) (string, bool, error) {
	saved, err := s.repo.GetTheme(ctx, visitorID)
	if err != nil {
		return "", false, err
	}
	if saved == model.ThemeLight || saved == model.ThemeDark {
		return saved, true, nil
	}
	// Fall back to the OS-level hint; nothing is persisted here.
	if systemHint == model.ThemeDark {
		return model.ThemeDark, false, nil
	}
	return model.ThemeLight, false, nil
}

func (s *preferenceServiceImpl) SetTheme(ctx context.Context, visitorID, theme string) error {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return ErrInvalidTheme
	}
	return s.repo.SetTheme(ctx, visitorID, theme)
}

func (s *preferenceServiceImpl) ToggleTheme(ctx context.Context, visitorID, systemHint string) (string, error) {
	current, _, err := s.Theme(ctx, visitorID, systemHint)
	if err != nil {
		return "", err
	}
	next := model.ThemeDark
	if current == model.ThemeDark {
		next = model.ThemeLight
	}
	if err := s.repo.SetTheme(ctx, visitorID, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *preferenceServiceImpl) ClockFormat(ctx context.Context, visitorID string) (string, error) {
	saved, err := s.repo.GetClockFormat(ctx, visitorID)
	if err != nil {
		return "", err
	}
	if saved == model.ClockFormat12 {
		return model.ClockFormat12, nil
	}
	return model.ClockFormat24, nil
}

func (s *preferenceServiceImpl) ToggleClockFormat(ctx context.Context, visitorID string) (string, error) {
	current, err := s.ClockFormat(ctx, visitorID)
	if err != nil {
		return "", err
	}
	next := model.ClockFormat12
	if current == model.ClockFormat12 {
		next = model.ClockFormat24
	}
	if err := s.repo.SetClockFormat(ctx, visitorID, next); err != nil {
		return "", err
	}
	return next, nil
}
