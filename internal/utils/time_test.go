package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		days int
	}{
		{"three full days", start.AddDate(0, 0, 3), 3},
		{"single day", start.AddDate(0, 0, 1), 1},
		{"partial day rounds up", start.Add(25 * time.Hour), 2},
		{"a few hours bills one day", start.Add(6 * time.Hour), 1},
		{"same instant floors to one day", start, 1},
		{"inverted range floors to one day", start.AddDate(0, 0, -2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, RentalDays(start, tt.end))
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2026-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, parsed.Hour())

	_, err = ParseDate("03/01/2026")
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+15550001111", NormalizePhone("+1 (555) 000-1111"))
	assert.Equal(t, "+15550001111", NormalizePhone("15550001111"))
	assert.Equal(t, "1111", PhoneLast4("+15550001111"))

	// Bare national numbers assume the default country code
	assert.Equal(t, "+15550001111", NormalizePhone("(555) 000-1111"))
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, OTPLength)
	assert.True(t, ValidateOTP(otp))

	assert.False(t, ValidateOTP("12345"))
	assert.False(t, ValidateOTP("12a456"))
}
