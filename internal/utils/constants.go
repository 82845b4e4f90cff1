package utils

const (
	// Default values
	DefaultCurrency    = "USD"
	DefaultCountryCode = "+1"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	OTPLength    = 6
	OTPRateLimit = 3

	// Rental Constants
	MinRentalDays   = 1
	MaxRentalDays   = 90
	MinPricePerDay  = 0.0
	MaxPricePerDay  = 10000.0
	MaxCarSeats     = 9
	MaxFeatures     = 15
	MaxFieldLength  = 500
	MaxBookingNotes = 1000

	// File Upload
	MaxImageSize   = 5 * 1024 * 1024 // 5MB
	ThumbnailWidth = 480

	// Admin dashboard
	RecentBookingsLimit = 10
)

// Error Messages
const (
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrValidationFailed = "validation failed"
)

// Cache Keys
const (
	CacheUserPrefix      = "user:"
	CacheCarPrefix       = "car:"
	CacheBookingPrefix   = "booking:"
	CacheOTPPrefix       = "otp:"
	CacheRateLimitPrefix = "rate_limit:"
	CacheVisitorCounter  = "stats:visitors"
)

// File Types
var (
	AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp"}
)
