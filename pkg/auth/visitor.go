package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

const visitorIDKey contextKey = "visitor_id"

const visitorCookieName = "folio_visitor"
const visitorCookieTTL = 365 * 24 * time.Hour

// VisitorCookieName returns the visitor identity cookie name.
func VisitorCookieName() string {
	return visitorCookieName
}

// VisitorIDFromContext returns the visitor ID set by VisitorIdentity.
func VisitorIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(visitorIDKey).(string)
	return v, ok
}

// WithVisitorID stores the visitor ID in the context.
func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorIDKey, id)
}

// NewVisitorID returns a random 32-hex-char visitor identifier.
func NewVisitorID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// rand.Read only fails when the OS entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(b)
}

// VisitorIdentity assigns each browser a stable visitor ID cookie and puts
// the ID on the request context. Existing cookies are reused as-is.
func VisitorIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(visitorCookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		}
		if id == "" {
			id = NewVisitorID()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(visitorCookieTTL / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), id)))
	})
}
