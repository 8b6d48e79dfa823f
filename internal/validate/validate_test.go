package validate

import (
	"strings"
	"testing"
)

func TestField_Name_Required(t *testing.T) {
	res := Field(FieldName, "")
	if res.Valid {
		t.Fatal("expected empty name to be invalid")
	}
	if !strings.Contains(res.Message, "required") {
		t.Errorf("expected required message, got %q", res.Message)
	}
}

func TestField_Name_WhitespaceOnlyIsRequired(t *testing.T) {
	res := Field(FieldName, "   ")
	if res.Valid {
		t.Error("expected whitespace-only name to fail the required check")
	}
}

func TestField_Name_MinLength(t *testing.T) {
	res := Field(FieldName, "Al")
	if res.Valid {
		t.Fatal("expected 2-character name to be invalid")
	}
	if !strings.Contains(res.Message, "at least 3") {
		t.Errorf("expected minLength message, got %q", res.Message)
	}
}

func TestField_Name_Valid(t *testing.T) {
	for _, name := range []string{"Ana", "José María", "Chloé Martin"} {
		if res := Field(FieldName, name); !res.Valid {
			t.Errorf("expected %q valid, got message %q", name, res.Message)
		}
	}
}

func TestField_Name_RejectsDigits(t *testing.T) {
	if res := Field(FieldName, "Ana42"); res.Valid {
		t.Error("expected name with digits to be invalid")
	}
}

func TestField_Email_Pattern(t *testing.T) {
	if res := Field(FieldEmail, "a@b"); res.Valid {
		t.Error("expected a@b to be invalid (no TLD)")
	}
	if res := Field(FieldEmail, "a@b.c"); !res.Valid {
		t.Errorf("expected a@b.c to be valid, got %q", res.Message)
	}
	if res := Field(FieldEmail, "not an email"); res.Valid {
		t.Error("expected plain text to be invalid")
	}
}

func TestField_Email_Required(t *testing.T) {
	if res := Field(FieldEmail, ""); res.Valid {
		t.Error("expected empty email to be invalid")
	}
}

func TestField_Subject_RequiredOnly(t *testing.T) {
	if res := Field(FieldSubject, ""); res.Valid {
		t.Error("expected empty subject to be invalid")
	}
	if res := Field(FieldSubject, "x"); !res.Valid {
		t.Errorf("expected any non-empty subject to be valid, got %q", res.Message)
	}
}

func TestField_Message_MinLength(t *testing.T) {
	res := Field(FieldMessage, "too short")
	if res.Valid {
		t.Error("expected 9-character message to be invalid")
	}
	if res := Field(FieldMessage, "long enough now"); !res.Valid {
		t.Errorf("expected 15-character message to be valid, got %q", res.Message)
	}
}

func TestField_Message_MaxLength(t *testing.T) {
	res := Field(FieldMessage, strings.Repeat("x", 501))
	if res.Valid {
		t.Fatal("expected 501-character message to be invalid")
	}
	if !strings.Contains(res.Message, "at most 500") {
		t.Errorf("expected maxLength message, got %q", res.Message)
	}

	if res := Field(FieldMessage, strings.Repeat("x", 500)); !res.Valid {
		t.Error("expected exactly 500 characters to be valid")
	}
}

func TestField_Phone_OptionalEmptySkipsPattern(t *testing.T) {
	if res := Field(FieldPhone, ""); !res.Valid {
		t.Errorf("expected empty optional phone to be valid, got %q", res.Message)
	}
	if res := Field(FieldPhone, "   "); !res.Valid {
		t.Error("expected whitespace-only optional phone to be valid")
	}
}

func TestField_Phone_Shapes(t *testing.T) {
	validPhones := []string{
		"+34 600 111 222",
		"600 111 222",
		"600111222",
		"+1 555 123 456",
	}
	for _, p := range validPhones {
		if res := Field(FieldPhone, p); !res.Valid {
			t.Errorf("expected %q valid, got %q", p, res.Message)
		}
	}

	invalidPhones := []string{"12", "phone me", "+34 12 34"}
	for _, p := range invalidPhones {
		if res := Field(FieldPhone, p); res.Valid {
			t.Errorf("expected %q invalid", p)
		}
	}
}

func TestField_FirstFailureOnly(t *testing.T) {
	// Empty name violates required, minLength and pattern; only the required
	// message may surface.
	res := Field(FieldName, "")
	if !strings.Contains(res.Message, "required") {
		t.Errorf("expected only the required failure, got %q", res.Message)
	}

	// "1" violates minLength before pattern.
	res = Field(FieldName, "1")
	if !strings.Contains(res.Message, "at least") {
		t.Errorf("expected minLength failure to win over pattern, got %q", res.Message)
	}
}

func TestField_ValidHasEmptyMessage(t *testing.T) {
	res := Field(FieldName, "Ana")
	if !res.Valid || res.Message != "" {
		t.Errorf("expected valid result with empty message, got %+v", res)
	}
}

func TestForm_AllValid(t *testing.T) {
	ok, results := Form(map[string]string{
		"name":    "Ana García",
		"email":   "ana@example.com",
		"subject": "Hello",
		"message": "A perfectly reasonable message.",
		"phone":   "",
	})
	if !ok {
		t.Errorf("expected form to pass, got %+v", results)
	}
}

func TestForm_OneBadFieldFailsForm(t *testing.T) {
	ok, results := Form(map[string]string{
		"name":    "Ana",
		"email":   "nope",
		"subject": "Hello",
		"message": "A perfectly reasonable message.",
	})
	if ok {
		t.Error("expected form to fail with invalid email")
	}
	if results[FieldEmail].Valid {
		t.Error("expected email result to be invalid")
	}
	if !results[FieldName].Valid {
		t.Error("expected name result to stay valid")
	}
}

func TestCounterState_Buckets(t *testing.T) {
	cases := []struct {
		length int
		want   string
	}{
		{0, CounterNeutral},
		{120, CounterNeutral},
		{400, CounterNeutral},
		{401, CounterWarning},
		{500, CounterWarning},
		{501, CounterError},
	}
	for _, c := range cases {
		if got := CounterState(c.length); got != c.want {
			t.Errorf("CounterState(%d) = %q, want %q", c.length, got, c.want)
		}
	}
}
