package models

import (
	"fmt"
	"strings"
)

// GalleryError is a sentinel error raised by model constructors and services
type GalleryError struct {
	Message string
}

func (e GalleryError) Error() string {
	return e.Message
}

var (
	ErrInvalidTimestamp = GalleryError{"timestamp must be RFC 3339 or YYYY-MM-DD"}
	ErrPasswordTooShort = GalleryError{"password must be at least 8 characters"}
	ErrUsernameTaken    = GalleryError{"username already registered"}
)

// FieldError describes one violated constraint of a request body
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError is returned when a create request fails validation
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func int64Value(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
