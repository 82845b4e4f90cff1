package validators

import (
	"fmt"
	"time"

	"carrent/internal/utils"
)

type BookingCreateRequest struct {
	CarID      string `json:"car_id" validate:"required,len=24,hexadecimal"`
	UserName   string `json:"user_name" validate:"omitempty,min=2,max=100"`
	Phone      string `json:"phone" validate:"omitempty,phone"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Option     string `json:"option" validate:"extra_option"`
	Address    string `json:"address"`
	Collateral string `json:"collateral"`
}

type PriceCalcRequest struct {
	CarID     string `json:"car_id" validate:"required,len=24,hexadecimal"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Option    string `json:"option" validate:"extra_option"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

func ValidateBookingCreate(req *BookingCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)
	validateDates(errors, req.StartDate, req.EndDate)
	if len(req.Address) > utils.MaxBookingNotes {
		errors["address"] = fmt.Sprintf("address must be at most %d characters", utils.MaxBookingNotes)
	}
	if len(req.Collateral) > utils.MaxBookingNotes {
		errors["collateral"] = fmt.Sprintf("collateral must be at most %d characters", utils.MaxBookingNotes)
	}
	return errors
}

func ValidatePriceCalc(req *PriceCalcRequest) ValidationErrors {
	errors := ValidateStruct(req)
	validateDates(errors, req.StartDate, req.EndDate)
	return errors
}

func ValidateBookingStatus(req *BookingStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}

// validateDates checks parseability only. Range semantics belong to the
// pricing policy.
func validateDates(errors ValidationErrors, start, end string) {
	if start != "" {
		if _, err := utils.ParseDate(start); err != nil {
			errors["start_date"] = "start_date must be a valid date"
		}
	}
	if end != "" {
		if _, err := utils.ParseDate(end); err != nil {
			errors["end_date"] = "end_date must be a valid date"
		}
	}
}

// ParseDates returns the parsed date pair. Call after validation.
func ParseDates(start, end string) (time.Time, time.Time) {
	startDate, _ := utils.ParseDate(start)
	endDate, _ := utils.ParseDate(end)
	return startDate, endDate
}
