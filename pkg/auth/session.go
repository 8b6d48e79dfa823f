package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrExpiredSession is returned when a token's validity window has passed.
var ErrExpiredSession = errors.New("expired session")

// CreateSessionToken builds a signed session token for the given subject,
// valid for ttl from now.
func CreateSessionToken(subject string, secret []byte, ttl time.Duration) string {
	payload := fmt.Sprintf("%s|%d", subject, time.Now().Add(ttl).Unix())
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifySessionToken checks the token's signature and expiry and returns
// the subject it was issued for.
func VerifySessionToken(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errors.New("invalid signature")
	}

	fields := strings.SplitN(string(payload), "|", 2)
	if len(fields) != 2 {
		return "", errors.New("invalid token payload")
	}
	exp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "", errors.New("invalid token payload")
	}
	if time.Now().Unix() > exp {
		return "", ErrExpiredSession
	}
	return fields[0], nil
}

const sessionCookieName = "folio_admin_session"
const minSecretLen = 32

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the signing key from a secret string,
// zero-padding it to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
