package services

import (
	"testing"
	"time"

	"carrent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestQuoteBasic(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	quote, err := svc.Quote(30, day(0), day(3), models.ExtraOptionGPS)
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 90.0, quote.BasePrice)
	assert.Equal(t, 15.0, quote.OptionPrice)
	assert.Equal(t, 105.0, quote.Total)
	assert.Equal(t, "USD", quote.Currency)
}

func TestQuoteOptionCatalog(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	tests := []struct {
		option models.ExtraOption
		total  float64
	}{
		{models.ExtraOptionNone, 100},
		{models.ExtraOptionGPS, 110},
		{models.ExtraOptionChildSeat, 106},
		{models.ExtraOptionInsurance, 120},
		{models.ExtraOptionChauffeur, 200},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			quote, err := svc.Quote(50, day(0), day(2), tt.option)
			require.NoError(t, err)
			assert.Equal(t, tt.total, quote.Total)
			assert.Equal(t, quote.BasePrice+quote.OptionPrice, quote.Total)
		})
	}
}

func TestQuotePartialDaysRoundUp(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	// 2 days and 6 hours bills 3 days
	end := day(2).Add(6 * time.Hour)
	quote, err := svc.Quote(40, day(0), end, models.ExtraOptionNone)
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 120.0, quote.Total)
}

func TestQuoteMaximumDuration(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	// 90 days is the longest rental the shop offers
	quote, err := svc.Quote(30, day(0), day(90), models.ExtraOptionNone)
	require.NoError(t, err)
	assert.Equal(t, 90, quote.Days)

	_, err = svc.Quote(30, day(0), day(91), models.ExtraOptionNone)
	assert.ErrorIs(t, err, ErrRentalTooLong)

	_, err = svc.Quote(30, day(0), day(0).AddDate(10, 0, 0), models.ExtraOptionNone)
	assert.ErrorIs(t, err, ErrRentalTooLong)
}

func TestQuoteEmptyOptionDefaultsToNone(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	quote, err := svc.Quote(40, day(0), day(1), "")
	require.NoError(t, err)
	assert.Equal(t, models.ExtraOptionNone, quote.Option)
	assert.Equal(t, 40.0, quote.Total)
}

func TestQuoteUnknownOption(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	_, err := svc.Quote(40, day(0), day(1), "wifi")
	assert.Error(t, err)
}

func TestQuoteRejectPolicy(t *testing.T) {
	svc := NewPricingService(DateRangeReject)

	_, err := svc.Quote(40, day(1), day(1), models.ExtraOptionNone)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Quote(40, day(2), day(1), models.ExtraOptionNone)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestQuoteFloorPolicy(t *testing.T) {
	svc := NewPricingService(DateRangeFloor)

	// Same-day and inverted ranges bill a single day
	quote, err := svc.Quote(40, day(1), day(1), models.ExtraOptionGPS)
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Days)
	assert.Equal(t, 45.0, quote.Total)

	quote, err = svc.Quote(40, day(2), day(1), models.ExtraOptionNone)
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Days)
	assert.Equal(t, 40.0, quote.Total)
}

func TestParseDateRangePolicy(t *testing.T) {
	policy, err := ParseDateRangePolicy("floor")
	require.NoError(t, err)
	assert.Equal(t, DateRangeFloor, policy)

	policy, err = ParseDateRangePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, DateRangeReject, policy)

	_, err = ParseDateRangePolicy("lenient")
	assert.Error(t, err)
}
