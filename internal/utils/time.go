package utils

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts plain calendar dates and RFC 3339 timestamps; booking
// forms submit the former, API clients the latter.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// RentalDays counts billable days: every started 24h span rounds up to a
// whole day and every rental bills at least one day.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < MinRentalDays {
		days = MinRentalDays
	}
	return days
}
