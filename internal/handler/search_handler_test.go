package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
)

func newTestSearchHandler() *SearchHandler {
	live := service.NewLiveSearch(service.NewGalleryService(), 5*time.Millisecond)
	return NewSearchHandler(live)
}

func searchRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(auth.WithVisitorID(req.Context(), "v-test"))
}

func TestSearchInput_Accepted(t *testing.T) {
	h := newTestSearchHandler()

	rec := httptest.NewRecorder()
	h.Input(rec, searchRequest(http.MethodPost, "/api/projects/search/input", `{"query":"shop"}`))

	if rec.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d", rec.Code)
	}
}

func TestSearchInput_NoVisitor(t *testing.T) {
	h := newTestSearchHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/projects/search/input", strings.NewReader(`{"query":"x"}`))
	rec := httptest.NewRecorder()
	h.Input(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a visitor ID, got %d", rec.Code)
	}
}

func TestSearchFilter_UnknownCategory(t *testing.T) {
	h := newTestSearchHandler()

	rec := httptest.NewRecorder()
	h.Filter(rec, searchRequest(http.MethodPost, "/api/projects/search/filter", `{"category":"vr"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSearchStream_DeliversResults(t *testing.T) {
	h := newTestSearchHandler()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/projects/search/stream", nil)
	req = req.WithContext(auth.WithVisitorID(ctx, "v-test"))
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Stream(rec, req)
	}()

	// A category switch emits immediately; the stream should pick it up.
	filterRec := httptest.NewRecorder()
	h.Filter(filterRec, searchRequest(http.MethodPost, "/api/projects/search/filter", `{"category":"web"}`))
	if filterRec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 from filter, got %d", filterRec.Code)
	}

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after disconnect")
	}

	if !strings.Contains(rec.Body.String(), "event: results") {
		t.Errorf("expected a results event, got %q", rec.Body.String())
	}
}

func TestSearchClose(t *testing.T) {
	h := newTestSearchHandler()

	rec := httptest.NewRecorder()
	h.Close(rec, searchRequest(http.MethodDelete, "/api/projects/search", ""))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
