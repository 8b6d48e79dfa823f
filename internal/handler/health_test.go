package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	return m.pingFunc(ctx)
}

func healthyDB() *mockDB {
	return &mockDB{pingFunc: func(ctx context.Context) error { return nil }}
}

func brokenDB(msg string) *mockDB {
	return &mockDB{pingFunc: func(ctx context.Context) error { return errors.New(msg) }}
}

func TestHealth_OK(t *testing.T) {
	h := New(healthyDB(), healthyDB(), "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	h := New(brokenDB("connection refused"), healthyDB(), "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "database") {
		t.Errorf("expected the failing store to be named: %s", rec.Body.String())
	}
}

func TestHealth_VisitorStoreDown(t *testing.T) {
	h := New(healthyDB(), brokenDB("connection refused"), "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "visitor store") {
		t.Errorf("expected the failing store to be named: %s", rec.Body.String())
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := New(healthyDB(), healthyDB(), "http://localhost:3000")
	handler := h.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the wrapped handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected allowed origin: %q", got)
	}
}
