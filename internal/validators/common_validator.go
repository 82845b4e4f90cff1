package validators

import (
	"errors"
	"fmt"
	"strings"

	"carrent/internal/utils"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps field names to human-readable messages.
type ValidationErrors map[string]string

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateStruct runs tag validation and flattens the result into field
// messages for the API error envelope.
func ValidateStruct(s interface{}) ValidationErrors {
	result := make(ValidationErrors)

	err := utils.ValidateStruct(s)
	if err == nil {
		return result
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		result["_"] = err.Error()
		return result
	}

	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		result[field] = messageForTag(field, fe)
	}
	return result
}

func messageForTag(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "transmission":
		return fmt.Sprintf("%s must be manual or automatic", field)
	case "booking_status":
		return fmt.Sprintf("%s must be a valid booking status", field)
	case "extra_option":
		return fmt.Sprintf("%s must be a valid extra option", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
