package service

import (
	"context"
	"fmt"
	"time"

	"github.com/folio/backend/internal/model"
)

// ClockService formats wall-clock readings and drives the once-per-second
// render loop behind the clock stream.
type ClockService interface {
	// Render formats now in the given clock format ("12" or "24").
	Render(now time.Time, format string) *model.ClockRender

	// Stream calls fn with a fresh render immediately and then every second
	// until ctx is cancelled.
	Stream(ctx context.Context, format string, fn func(*model.ClockRender))
}

// clockServiceImpl is the production implementation of ClockService.
type clockServiceImpl struct {
	now func() time.Time
}

// NewClockService creates a ClockService reading the system clock.
func NewClockService() ClockService {
	return &clockServiceImpl{now: time.Now}
}

func (s *clockServiceImpl) Render(now time.Time, format string) *model.ClockRender {
	hour := now.Hour()
	meridiem := ""
	if format == model.ClockFormat12 {
		meridiem = "AM"
		if hour >= 12 {
			meridiem = "PM"
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}

	return &model.ClockRender{
		Time:     fmt.Sprintf("%02d:%02d:%02d", hour, now.Minute(), now.Second()),
		Meridiem: meridiem,
		Date:     now.Format("Monday, January 2, 2006"),
		Year:     now.Year(),
	}
}

// Stream renders once up front, then on a one-second tick. The ticker is
// released when ctx ends; nothing else stops the loop.
func (s *clockServiceImpl) Stream(ctx context.Context, format string, fn func(*model.ClockRender)) {
	fn(s.Render(s.now(), format))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(s.Render(s.now(), format))
		}
	}
}
