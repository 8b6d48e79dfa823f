package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const adminKey contextKey = "is_admin"

// AdminSubject is the subject admin session tokens are issued for.
const AdminSubject = "admin"

// IsAdminFromContext reports whether the request carries a verified admin
// session. Returns false when not set.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// WithAdmin marks the context as belonging to an authenticated admin.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// RequireAdmin verifies the admin session cookie and rejects requests
// without a valid one.
func RequireAdmin(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			subject, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil || subject != AdminSubject {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
		})
	}
}

// DevAdmin grants admin to every request (AUTH_REQUIRED=false).
func DevAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
	})
}
