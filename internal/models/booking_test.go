package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to approved", BookingStatusPending, BookingStatusApproved, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"approved to completed", BookingStatusApproved, BookingStatusCompleted, true},
		{"approved to rejected", BookingStatusApproved, BookingStatusRejected, false},
		{"approved to pending", BookingStatusApproved, BookingStatusPending, false},
		{"rejected to approved", BookingStatusRejected, BookingStatusApproved, false},
		{"rejected to pending", BookingStatusRejected, BookingStatusPending, false},
		{"completed to approved", BookingStatusCompleted, BookingStatusApproved, false},
		{"completed to pending", BookingStatusCompleted, BookingStatusPending, false},
		{"pending to itself", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusApproved.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())

	// Unknown statuses are neither valid nor terminal
	assert.False(t, BookingStatus("cancelled").IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusApproved, status)

	_, err = ParseBookingStatus("cancelled")
	assert.Error(t, err)

	_, err = ParseBookingStatus("")
	assert.Error(t, err)
}

func TestExtraOptionRates(t *testing.T) {
	assert.Equal(t, 0.0, ExtraOptionNone.PerDayRate())
	assert.Equal(t, 5.0, ExtraOptionGPS.PerDayRate())
	assert.Equal(t, 3.0, ExtraOptionChildSeat.PerDayRate())
	assert.Equal(t, 10.0, ExtraOptionInsurance.PerDayRate())
	assert.Equal(t, 50.0, ExtraOptionChauffeur.PerDayRate())

	// Unknown options carry no surcharge
	assert.Equal(t, 0.0, ExtraOption("wifi").PerDayRate())
	assert.False(t, ExtraOption("wifi").IsValid())
}
