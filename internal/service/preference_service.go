package service

import "context"

// PreferenceService manages the visitor's persisted display preferences:
// light/dark theme and 12/24-hour clock format.
type PreferenceService interface {
	// Theme returns the effective theme. A persisted preference wins; when
	// absent, the caller-supplied OS hint applies WITHOUT being persisted
	// (the preference stays unset until the visitor explicitly toggles),
	// and stored reports false.
	Theme(ctx context.Context, visitorID, systemHint string) (theme string, stored bool, err error)

	// SetTheme persists an explicit theme choice.
	SetTheme(ctx context.Context, visitorID, theme string) error

	// ToggleTheme flips the effective theme (computed with the same fallback
	// as Theme), persists and returns the result.
	ToggleTheme(ctx context.Context, visitorID, systemHint string) (string, error)

	// ClockFormat returns the persisted format, defaulting to 24-hour.
	ClockFormat(ctx context.Context, visitorID string) (string, error)

	// ToggleClockFormat flips the persisted format and returns the result.
	ToggleClockFormat(ctx context.Context, visitorID string) (string, error)
}
