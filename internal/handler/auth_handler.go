package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/folio/backend/pkg/auth"
)

// sessionTTL is how long an admin login stays valid.
const sessionTTL = 12 * time.Hour

// AuthHandler handles the password-based admin login.
type AuthHandler struct {
	passwordHash  string
	sessionSecret []byte
	secureCookies bool
}

// NewAuthHandler creates an AuthHandler. passwordHash is a bcrypt hash of the
// admin password; an empty hash disables login entirely.
func NewAuthHandler(passwordHash string, sessionSecret []byte, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		passwordHash:  passwordHash,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

// loginRequest is the expected JSON body for POST /api/admin/login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
// A correct password sets the admin session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "login_disabled"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if !auth.CheckPassword(h.passwordHash, req.Password) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_password"})
		return
	}

	token := auth.CreateSessionToken(auth.AdminSubject, h.sessionSecret, sessionTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}
