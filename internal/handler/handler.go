package handler

import (
	"net/http"

	"github.com/folio/backend/internal/repository"
)

// Handler carries the cross-cutting dependencies: the two backing stores for
// health checks and the allowed frontend origin for CORS.
type Handler struct {
	db          repository.DB
	cache       repository.DB
	frontendURL string
}

func New(db, cache repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, cache: cache, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
