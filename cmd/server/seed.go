package main

import (
	"context"
	"errors"

	"carrent/internal/config"
	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/pkg/logger"
)

// seed promotes the configured admin phone and loads the starter fleet into
// an empty cars collection. Both steps are idempotent.
func seed(ctx context.Context, cfg *config.RentalConfig, userRepo interfaces.UserRepository, carRepo interfaces.CarRepository, log *logger.Logger) error {
	if cfg.AdminPhone != "" {
		if err := seedAdmin(ctx, cfg.AdminPhone, userRepo, log); err != nil {
			return err
		}
	}
	if cfg.SeedFleet {
		return seedFleet(ctx, carRepo, log)
	}
	return nil
}

func seedAdmin(ctx context.Context, phone string, userRepo interfaces.UserRepository, log *logger.Logger) error {
	user, err := userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			return err
		}
		user = &models.User{
			Name:            "Admin",
			Phone:           phone,
			Role:            models.RoleAdmin,
			IsPhoneVerified: true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		log.Info("Admin user created")
		return nil
	}

	if user.Role != models.RoleAdmin {
		if err := userRepo.UpdateRole(ctx, user.ID, models.RoleAdmin); err != nil {
			return err
		}
		log.Info("Existing user promoted to admin")
	}
	return nil
}

func seedFleet(ctx context.Context, carRepo interfaces.CarRepository, log *logger.Logger) error {
	count, err := carRepo.GetTotalCount(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fleet := []*models.Car{
		{
			Name:         "Toyota Corolla",
			PricePerDay:  30,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Brand:        "Toyota",
			Description:  "Reliable compact sedan, great fuel economy",
			FuelType:     "petrol",
			Features:     []string{"air conditioning", "bluetooth"},
			Available:    true,
		},
		{
			Name:         "Hyundai Tucson",
			PricePerDay:  55,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Brand:        "Hyundai",
			Description:  "Mid-size SUV with a roomy trunk",
			FuelType:     "petrol",
			Features:     []string{"air conditioning", "rear camera", "cruise control"},
			Available:    true,
		},
		{
			Name:         "Suzuki Alto",
			PricePerDay:  18,
			Seats:        4,
			Transmission: models.TransmissionManual,
			Brand:        "Suzuki",
			Description:  "Budget city car",
			FuelType:     "petrol",
			Available:    true,
		},
		{
			Name:         "Toyota Land Cruiser",
			PricePerDay:  120,
			Seats:        7,
			Transmission: models.TransmissionAutomatic,
			Brand:        "Toyota",
			Description:  "Full-size 4x4 for long trips and rough roads",
			FuelType:     "diesel",
			Features:     []string{"4x4", "air conditioning", "roof rack"},
			Available:    true,
		},
		{
			Name:         "Mercedes-Benz E-Class",
			PricePerDay:  95,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Brand:        "Mercedes-Benz",
			Description:  "Executive sedan, popular with the chauffeur option",
			FuelType:     "petrol",
			Features:     []string{"leather seats", "climate control", "parking sensors"},
			Available:    true,
		},
	}

	for _, car := range fleet {
		if err := carRepo.Create(ctx, car); err != nil {
			return err
		}
	}

	log.Infof("Seeded %d cars", len(fleet))
	return nil
}
