package validators

import (
	"fmt"

	"carrent/internal/utils"
)

type CarCreateRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	PricePerDay  float64  `json:"price_per_day" validate:"gte=0"`
	Seats        int      `json:"seats" validate:"required,min=1"`
	Transmission string   `json:"transmission" validate:"required,transmission"`
	Brand        string   `json:"brand" validate:"omitempty,max=100"`
	Description  string   `json:"description"`
	FuelType     string   `json:"fuel_type" validate:"omitempty,max=50"`
	Mileage      int      `json:"mileage" validate:"omitempty,gte=0"`
	Features     []string `json:"features"`
	Image        string   `json:"image" validate:"omitempty,url"`
	Available    *bool    `json:"available"`
}

type CarUpdateRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=100"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,gte=0"`
	Seats        *int     `json:"seats" validate:"omitempty,min=1"`
	Transmission *string  `json:"transmission" validate:"omitempty,transmission"`
	Brand        *string  `json:"brand" validate:"omitempty,max=100"`
	Description  *string  `json:"description"`
	FuelType     *string  `json:"fuel_type" validate:"omitempty,max=50"`
	Mileage      *int     `json:"mileage" validate:"omitempty,gte=0"`
	Features     []string `json:"features"`
	Image        *string  `json:"image" validate:"omitempty,url"`
	Available    *bool    `json:"available"`
}

func ValidateCarCreate(req *CarCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Name != "" && utils.SanitizeString(req.Name) == "" {
		errors["name"] = "name must not be empty"
	}
	validateCarLimits(errors, req.PricePerDay, req.Seats, req.Description, req.Features)
	return errors
}

func ValidateCarUpdate(req *CarUpdateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	price := utils.MinPricePerDay
	if req.PricePerDay != nil {
		price = *req.PricePerDay
	}
	seats := 1
	if req.Seats != nil {
		seats = *req.Seats
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	validateCarLimits(errors, price, seats, description, req.Features)
	return errors
}

// validateCarLimits enforces the fleet bounds that tag validation cannot
// express against the shared rental constants.
func validateCarLimits(errors ValidationErrors, price float64, seats int, description string, features []string) {
	if price < utils.MinPricePerDay || price > utils.MaxPricePerDay {
		errors["price_per_day"] = fmt.Sprintf("price_per_day must be between %.0f and %.0f", utils.MinPricePerDay, utils.MaxPricePerDay)
	}
	if seats > utils.MaxCarSeats {
		errors["seats"] = fmt.Sprintf("seats must be at most %d", utils.MaxCarSeats)
	}
	if len(description) > utils.MaxFieldLength {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", utils.MaxFieldLength)
	}
	if len(features) > utils.MaxFeatures {
		errors["features"] = fmt.Sprintf("features must have at most %d entries", utils.MaxFeatures)
	}
}

// Updates flattens the request into the partial-update map the repository
// consumes. Nil fields are omitted.
func (req *CarUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = utils.SanitizeString(*req.Name)
	}
	if req.PricePerDay != nil {
		updates["price_per_day"] = *req.PricePerDay
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.Brand != nil {
		updates["brand"] = utils.SanitizeString(*req.Brand)
	}
	if req.Description != nil {
		updates["description"] = utils.SanitizeString(*req.Description)
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.Features != nil {
		updates["features"] = req.Features
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	return updates
}
