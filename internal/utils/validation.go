package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("transmission", validateTransmission)
	validate.RegisterValidation("booking_status", validateBookingStatus)
	validate.RegisterValidation("extra_option", validateExtraOption)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return IsValidPhone(phone)
}

func validateTransmission(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	return t == "manual" || t == "automatic"
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	switch status {
	case "pending", "approved", "rejected", "completed":
		return true
	}
	return false
}

func validateExtraOption(fl validator.FieldLevel) bool {
	option := fl.Field().String()
	switch option {
	case "", "none", "gps", "child", "insurance", "chauffeur":
		return true
	}
	return false
}

func SanitizeString(input string) string {
	// Remove HTML tags
	htmlRegex := regexp.MustCompile(`<[^>]*>`)
	cleaned := htmlRegex.ReplaceAllString(input, "")

	// Trim whitespace
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
