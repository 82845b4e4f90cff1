package services

import (
	"errors"
	"fmt"

	"carrent/internal/models"
)

var (
	// ErrCacheMiss is returned by CacheService.Get when the key is absent.
	ErrCacheMiss = errors.New("cache miss")

	// ErrAdminRequired is returned when a non-admin caller attempts an
	// admin-only operation such as a booking status transition.
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrNotOwner is returned when a caller attempts to act on a booking
	// that belongs to another user.
	ErrNotOwner = errors.New("booking belongs to another user")

	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrRentalTooLong    = errors.New("rental exceeds the maximum duration")
	ErrInvalidOTP       = errors.New("invalid or expired verification code")
	ErrOTPRateLimited   = errors.New("too many verification codes requested")
	ErrPhoneNotVerified = errors.New("phone number is not verified")
	ErrCarUnavailable   = errors.New("car is not available for booking")
	ErrInvalidImageType = errors.New("unsupported image type")
	ErrSelfRoleChange   = errors.New("cannot change your own role")
)

// InvalidTransitionError reports a booking status change that the lifecycle
// does not permit.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}
