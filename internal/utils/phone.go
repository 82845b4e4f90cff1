package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func IsValidPhone(phone string) bool {
	// Remove all non-digit characters except +
	cleaned := regexp.MustCompile(`[^\d+]`).ReplaceAllString(phone, "")

	// Basic E.164 format validation
	return phoneRegex.MatchString(cleaned)
}

func NormalizePhone(phone string) string {
	// Remove all spaces, dashes, parentheses, etc.
	normalized := regexp.MustCompile(`[^\d+]`).ReplaceAllString(phone, "")

	// Bare 10-digit national numbers get the default country code
	if !strings.HasPrefix(normalized, "+") {
		if len(normalized) == 10 {
			normalized = DefaultCountryCode + normalized
		} else {
			normalized = "+" + normalized
		}
	}

	return normalized
}

func MaskPhone(phone string) string {
	if len(phone) < 4 {
		return phone
	}

	// Show last 4 digits
	masked := strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
	return masked
}

// PhoneLast4 is used for the default display name of users created on first
// verification ("User 1234").
func PhoneLast4(phone string) string {
	normalized := NormalizePhone(phone)
	if len(normalized) < 4 {
		return normalized
	}
	return normalized[len(normalized)-4:]
}

func GenerateOTP() string {
	return GenerateRandomNumericString(OTPLength)
}

func ValidateOTP(otp string) bool {
	if len(otp) != OTPLength {
		return false
	}

	for _, char := range otp {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
