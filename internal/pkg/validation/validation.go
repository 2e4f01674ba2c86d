package validation

import (
	"strings"
)

// Validation rule constants
var (
	// PasswordMinLength is the minimum mentor password length
	PasswordMinLength = 6

	// NameMinLength is the minimum length for names and expertise after trimming
	NameMinLength = 2
)

// IsValidEmail reports whether the address has an '@' with a '.' somewhere
// after it. Deliberately loose: the store's uniqueness constraint, not the
// format check, is the real gate.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// NormalizeEmail lowercases and trims an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FieldError describes a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result accumulates field-level validation failures in the order the fields
// were checked, so callers can report every missing field together instead of
// only the first.
type Result struct {
	errors []FieldError
}

// NewResult creates an empty validation result
func NewResult() *Result {
	return &Result{}
}

// Require records the field as missing when its value is empty after trimming
func (r *Result) Require(field, value string) *Result {
	if strings.TrimSpace(value) == "" {
		r.errors = append(r.errors, FieldError{Field: field, Message: "is required"})
	}
	return r
}

// AddError records an arbitrary field failure
func (r *Result) AddError(field, message string) *Result {
	r.errors = append(r.errors, FieldError{Field: field, Message: message})
	return r
}

// HasErrors reports whether any failure was recorded
func (r *Result) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns the recorded failures in check order
func (r *Result) Errors() []FieldError {
	return r.errors
}

// Fields returns the failing field names in check order
func (r *Result) Fields() []string {
	fields := make([]string, 0, len(r.errors))
	for _, e := range r.errors {
		fields = append(fields, e.Field)
	}
	return fields
}

// MissingFieldsMessage renders the classic "Missing fields: a, b" message
func (r *Result) MissingFieldsMessage() string {
	return "Missing fields: " + strings.Join(r.Fields(), ", ")
}
