// Package validate implements the contact-form field rules: a fixed rule
// table checked in a fixed order (required, minimum length, maximum length,
// pattern), reporting only the first failure per field.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names accepted by Field and Form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// MaxMessageLength is the hard cap on the message body.
const MaxMessageLength = 500

var (
	// Letters including accented Latin letters, plus spaces.
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

	// local@domain.tld shape; "a@b" fails, "a@b.c" passes.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional country code, then digits in groups of three with optional
	// spaces. Deliberately lenient about total length.
	phoneRe = regexp.MustCompile(`^(\+\d{1,3}[ ]?)?\d{3}([ ]?\d{3})+$`)
)

// rule is one row of the validation table. Zero values mean "no constraint".
type rule struct {
	required   bool
	minLength  int
	maxLength  int
	pattern    *regexp.Regexp
	patternMsg string
}

var rules = map[string]rule{
	FieldName: {
		required:   true,
		minLength:  3,
		pattern:    nameRe,
		patternMsg: "name may only contain letters and spaces",
	},
	FieldEmail: {
		required:   true,
		pattern:    emailRe,
		patternMsg: "enter a valid email address",
	},
	FieldPhone: {
		pattern:    phoneRe,
		patternMsg: "enter a valid phone number",
	},
	FieldSubject: {
		required: true,
	},
	FieldMessage: {
		required:  true,
		minLength: 10,
		maxLength: MaxMessageLength,
	},
}

// Result is the outcome of validating a single field. Message is empty when
// the field is valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func invalid(msg string) Result { return Result{Valid: false, Message: msg} }

var valid = Result{Valid: true}

// Field validates one field value against its rule row. Checks run in fixed
// order and stop at the first failure. The pattern check is skipped entirely
// for empty optional fields. Unknown field names are valid by definition.
func Field(field, value string) Result {
	r, ok := rules[field]
	if !ok {
		return valid
	}

	trimmed := strings.TrimSpace(value)

	if r.required && trimmed == "" {
		return invalid(field + " is required")
	}
	if trimmed == "" {
		// Optional field left empty: no further checks apply.
		return valid
	}
	if r.minLength > 0 && utf8.RuneCountInString(trimmed) < r.minLength {
		return invalid(fmt.Sprintf("%s must be at least %d characters", field, r.minLength))
	}
	if r.maxLength > 0 && utf8.RuneCountInString(trimmed) > r.maxLength {
		return invalid(fmt.Sprintf("%s must be at most %d characters", field, r.maxLength))
	}
	if r.pattern != nil && !r.pattern.MatchString(trimmed) {
		return invalid(r.patternMsg)
	}
	return valid
}

// Form runs Field over all five fields and reports per-field results plus an
// overall flag that is true only when every field passes.
func Form(values map[string]string) (bool, map[string]Result) {
	results := make(map[string]Result, len(rules))
	ok := true
	for field := range rules {
		res := Field(field, values[field])
		results[field] = res
		if !res.Valid {
			ok = false
		}
	}
	return ok, results
}

// Character-counter states for the message field. The states are mutually
// exclusive; CounterError blocks submission regardless of other checks.
const (
	CounterNeutral = "neutral"
	CounterWarning = "warning"
	CounterError   = "error"
)

// counterWarningAt is the length after which the counter turns to warning.
const counterWarningAt = 400

// CounterState buckets a message length: 0–400 neutral, 401–500 warning,
// beyond 500 error.
func CounterState(length int) string {
	switch {
	case length > MaxMessageLength:
		return CounterError
	case length > counterWarningAt:
		return CounterWarning
	default:
		return CounterNeutral
	}
}
