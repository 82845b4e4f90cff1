package validators

import (
	"strings"
	"testing"

	"carrent/internal/utils"

	"github.com/stretchr/testify/assert"
)

func validCarCreate() *CarCreateRequest {
	return &CarCreateRequest{
		Name:         "Corolla",
		PricePerDay:  30,
		Seats:        5,
		Transmission: "automatic",
	}
}

func TestValidateCarCreate(t *testing.T) {
	errors := ValidateCarCreate(validCarCreate())
	assert.False(t, errors.HasErrors())
}

func TestValidateCarCreateLimits(t *testing.T) {
	req := validCarCreate()
	req.PricePerDay = utils.MaxPricePerDay + 1
	errors := ValidateCarCreate(req)
	assert.Contains(t, errors, "price_per_day")

	req = validCarCreate()
	req.Seats = utils.MaxCarSeats + 2
	errors = ValidateCarCreate(req)
	assert.Contains(t, errors, "seats")

	req = validCarCreate()
	req.Description = strings.Repeat("x", utils.MaxFieldLength+1)
	errors = ValidateCarCreate(req)
	assert.Contains(t, errors, "description")

	req = validCarCreate()
	req.Features = make([]string, utils.MaxFeatures+1)
	errors = ValidateCarCreate(req)
	assert.Contains(t, errors, "features")
}

func TestValidateCarUpdateLimits(t *testing.T) {
	price := utils.MaxPricePerDay + 1
	errors := ValidateCarUpdate(&CarUpdateRequest{PricePerDay: &price})
	assert.Contains(t, errors, "price_per_day")

	errors = ValidateCarUpdate(&CarUpdateRequest{})
	assert.False(t, errors.HasErrors())
}

func TestValidateBookingCreateNotes(t *testing.T) {
	req := &BookingCreateRequest{
		CarID:     strings.Repeat("a", 24),
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
		Address:   strings.Repeat("x", utils.MaxBookingNotes+1),
	}
	errors := ValidateBookingCreate(req)
	assert.Contains(t, errors, "address")
}
