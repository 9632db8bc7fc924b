package services

import (
	"testing"

	"github.com/netra/gallery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_FieldErrors(t *testing.T) {
	v := newValidator()

	err := validateStruct(v, models.CreateEventRequest{
		Name: "Opening Ceremony",
		Date: ptr("tomorrow"),
	})
	require.Error(t, err)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	byField := map[string]models.FieldError{}
	for _, fe := range verr.Errors {
		byField[fe.Field] = fe
	}

	assert.Equal(t, "required", byField["exhibitionId"].Code)
	assert.Equal(t, "timestamp", byField["date"].Code)
	assert.Equal(t, "required", byField["time"].Code)
	assert.Equal(t, "is required", byField["time"].Message)
	assert.Contains(t, err.Error(), "invalid data")
}

func TestValidateStruct_MinLengthMessage(t *testing.T) {
	err := validateStruct(newValidator(), models.CreateContactMessageRequest{
		Name: "Meera", Email: "meera@example.com", Subject: "Hello", Message: "too short",
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "message", verr.Errors[0].Field)
	assert.Equal(t, "min", verr.Errors[0].Code)
	assert.Equal(t, "must be at least 10 characters", verr.Errors[0].Message)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain text untouched", "Aanya's photo walk & talk", "Aanya's photo walk & talk"},
		{"tags stripped", "<b>Bold</b> move", "Bold move"},
		{"script removed with content", "<script>alert(1)</script>Safe", "Safe"},
		{"entities survive stripping", "<i>Rock & Roll</i>", "Rock & Roll"},
		{"markup only", "<img src=x>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeText(tt.in))
		})
	}
}
