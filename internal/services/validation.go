package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/netra/gallery/internal/models"
)

// newValidator builds a validator that reports JSON field names and knows
// the "timestamp" tag (RFC 3339 or YYYY-MM-DD).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTimestamp(fl.Field().String())
		return err == nil
	})

	return v
}

// validateStruct runs struct validation and converts failures to a
// *models.ValidationError listing every violated field
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	out := &models.ValidationError{Errors: make([]models.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, models.FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "timestamp":
		return "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
