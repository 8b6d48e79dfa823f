package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

func fixedFormatPrefs(format string) *mockPreferenceService {
	return &mockPreferenceService{
		clockFormatFunc: func(ctx context.Context, visitorID string) (string, error) {
			return format, nil
		},
	}
}

func TestClockGet_UsesStoredPreference(t *testing.T) {
	h := NewClockHandler(service.NewClockService(), fixedFormatPrefs("12"))

	rec := httptest.NewRecorder()
	h.Get(rec, visitorRequest(http.MethodGet, "/api/clock"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var render model.ClockRender
	if err := json.NewDecoder(rec.Body).Decode(&render); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if render.Meridiem != "AM" && render.Meridiem != "PM" {
		t.Errorf("expected a meridiem in 12-hour mode, got %q", render.Meridiem)
	}
	if len(render.Time) != 8 {
		t.Errorf("expected HH:MM:SS, got %q", render.Time)
	}
}

func TestClockGet_FormatParamOverridesPreference(t *testing.T) {
	h := NewClockHandler(service.NewClockService(), fixedFormatPrefs("12"))

	rec := httptest.NewRecorder()
	h.Get(rec, visitorRequest(http.MethodGet, "/api/clock?format=24"))

	var render model.ClockRender
	if err := json.NewDecoder(rec.Body).Decode(&render); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if render.Meridiem != "" {
		t.Errorf("expected no meridiem in 24-hour mode, got %q", render.Meridiem)
	}
}

func TestClockGet_NoVisitorDefaultsTo24(t *testing.T) {
	h := NewClockHandler(service.NewClockService(), &mockPreferenceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/clock", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var render model.ClockRender
	if err := json.NewDecoder(rec.Body).Decode(&render); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if render.Meridiem != "" {
		t.Errorf("expected 24-hour default without a visitor, got meridiem %q", render.Meridiem)
	}
}

func TestClockStream_EmitsTickEvents(t *testing.T) {
	h := NewClockHandler(service.NewClockService(), fixedFormatPrefs("24"))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/clock/stream", nil)
	req = req.WithContext(auth.WithVisitorID(ctx, "v-test"))
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Stream(rec, req)
	}()

	// The first render is written immediately; give it a moment, then hang up.
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after disconnect")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected SSE content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "event: tick") {
		t.Errorf("expected at least one tick event, got %q", rec.Body.String())
	}
}
