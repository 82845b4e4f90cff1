package services

import (
	"fmt"
	"time"

	"carrent/internal/models"
	"carrent/internal/utils"
)

// DateRangePolicy controls how a quote treats an end date that is not after
// the start date.
type DateRangePolicy string

const (
	// DateRangeReject refuses the quote with ErrInvalidDateRange.
	DateRangeReject DateRangePolicy = "reject"
	// DateRangeFloor clamps the rental to the one-day minimum.
	DateRangeFloor DateRangePolicy = "floor"
)

func ParseDateRangePolicy(s string) (DateRangePolicy, error) {
	switch DateRangePolicy(s) {
	case DateRangeReject, DateRangeFloor:
		return DateRangePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown date range policy: %s", s)
	}
}

// PriceQuote is the breakdown of a rental price. Total is always
// BasePrice + OptionPrice.
type PriceQuote struct {
	Days        int                `json:"days"`
	PricePerDay float64            `json:"price_per_day"`
	Option      models.ExtraOption `json:"option"`
	BasePrice   float64            `json:"base_price"`
	OptionPrice float64            `json:"option_price"`
	Total       float64            `json:"total"`
	Currency    string             `json:"currency"`
}

type PricingService interface {
	Quote(pricePerDay float64, startDate, endDate time.Time, option models.ExtraOption) (*PriceQuote, error)
}

type pricingService struct {
	policy DateRangePolicy
}

func NewPricingService(policy DateRangePolicy) PricingService {
	if policy == "" {
		policy = DateRangeReject
	}
	return &pricingService{policy: policy}
}

// Quote prices a rental. Partial days round up and every rental bills for at
// least one day.
func (s *pricingService) Quote(pricePerDay float64, startDate, endDate time.Time, option models.ExtraOption) (*PriceQuote, error) {
	if !endDate.After(startDate) && s.policy == DateRangeReject {
		return nil, ErrInvalidDateRange
	}
	if option == "" {
		option = models.ExtraOptionNone
	}
	if !option.IsValid() {
		return nil, fmt.Errorf("unknown extra option: %s", option)
	}

	days := utils.RentalDays(startDate, endDate)
	if days > utils.MaxRentalDays {
		return nil, ErrRentalTooLong
	}
	base := pricePerDay * float64(days)
	extra := option.PerDayRate() * float64(days)

	return &PriceQuote{
		Days:        days,
		PricePerDay: pricePerDay,
		Option:      option,
		BasePrice:   base,
		OptionPrice: extra,
		Total:       base + extra,
		Currency:    utils.DefaultCurrency,
	}, nil
}
