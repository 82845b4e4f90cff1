package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"
	"carrent/pkg/logger"
	"carrent/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID primitive.ObjectID, req *CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	ListBookings(ctx context.Context, status *models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	ListUserBookings(ctx context.Context, caller *Caller, userID primitive.ObjectID) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, caller *Caller, id primitive.ObjectID, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(ctx context.Context, caller *Caller, id primitive.ObjectID) error
	CalculatePrice(ctx context.Context, req *PriceRequest) (*PriceQuote, error)
}

// Caller identifies the authenticated user performing an operation. The
// service layer owns authorization so every transport shares one guard.
type Caller struct {
	UserID primitive.ObjectID
	Role   models.Role
}

func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == models.RoleAdmin
}

type CreateBookingRequest struct {
	CarID      primitive.ObjectID `json:"car_id"`
	UserName   string             `json:"user_name"`
	Phone      string             `json:"phone"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	Option     models.ExtraOption `json:"option"`
	Address    string             `json:"address"`
	Collateral string             `json:"collateral"`
}

type PriceRequest struct {
	CarID     primitive.ObjectID `json:"car_id"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Option    models.ExtraOption `json:"option"`
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	carRepo     interfaces.CarRepository
	userRepo    interfaces.UserRepository
	pricing     PricingService
	maps        maps.MapsProvider
	logger      *logger.Logger
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	carRepo interfaces.CarRepository,
	userRepo interfaces.UserRepository,
	pricing PricingService,
	mapsProvider maps.MapsProvider,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		pricing:     pricing,
		maps:        mapsProvider,
		logger:      log,
	}
}

// authorizeAdmin is the single admin gate for booking operations.
func authorizeAdmin(caller *Caller) error {
	if !caller.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CreateBooking prices the request server-side and stores the booking as
// pending. Any status or price supplied by the caller is ignored.
func (s *bookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, req *CreateBookingRequest) (*models.Booking, error) {
	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if !car.Available {
		return nil, ErrCarUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricing.Quote(car.PricePerDay, req.StartDate, req.EndDate, req.Option)
	if err != nil {
		return nil, err
	}

	userName := req.UserName
	if userName == "" {
		userName = user.Name
	}
	phone := req.Phone
	if phone == "" {
		phone = user.Phone
	}

	booking := &models.Booking{
		CarID:      car.ID,
		UserID:     user.ID,
		UserName:   userName,
		Phone:      utils.NormalizePhone(phone),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Option:     quote.Option,
		Days:       quote.Days,
		TotalPrice: quote.Total,
		Status:     models.BookingStatusPending,
		Address:    req.Address,
		Collateral: req.Collateral,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if location := s.geocodeAddress(ctx, req.Address); location != nil {
		if err := s.bookingRepo.UpdateDeliveryLocation(ctx, booking.ID, location); err != nil {
			s.logger.WithError(err).Warn("Failed to store delivery location")
		} else {
			booking.DeliveryLocation = location
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"booking_id": booking.ID.Hex(),
		"car_id":     car.ID.Hex(),
		"days":       booking.Days,
		"total":      booking.TotalPrice,
	}).Info("Booking created")

	return booking, nil
}

// geocodeAddress resolves the delivery address when a maps provider is
// configured. Failures are logged and the booking proceeds without
// coordinates.
func (s *bookingService) geocodeAddress(ctx context.Context, address string) *models.GeoPoint {
	if s.maps == nil || address == "" {
		return nil
	}

	resp, err := s.maps.Geocode(ctx, address)
	if err != nil {
		s.logger.WithError(err).WithField("address", address).Warn("Geocoding failed")
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}

	coords := resp.Results[0].Coordinates
	return &models.GeoPoint{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}
}

func (s *bookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, status *models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	if status != nil {
		return s.bookingRepo.GetByStatus(ctx, *status, params)
	}
	return s.bookingRepo.List(ctx, params)
}

// ListUserBookings returns a user's bookings in creation order. Non-admin
// callers may only read their own.
func (s *bookingService) ListUserBookings(ctx context.Context, caller *Caller, userID primitive.ObjectID) ([]*models.Booking, error) {
	if !caller.IsAdmin() && caller.UserID != userID {
		return nil, ErrNotOwner
	}
	return s.bookingRepo.GetByUserID(ctx, userID)
}

// UpdateStatus moves a booking along its lifecycle. Only admins may change
// status, and only along a permitted transition.
func (s *bookingService) UpdateStatus(ctx context.Context, caller *Caller, id primitive.ObjectID, status models.BookingStatus) (*models.Booking, error) {
	if err := authorizeAdmin(caller); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, &InvalidTransitionError{From: booking.Status, To: status}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.logger.WithFields(map[string]interface{}{
		"booking_id": id.Hex(),
		"status":     status.String(),
	}).Info("Booking status updated")

	return booking, nil
}

// DeleteBooking removes a booking outright. The owner or an admin may delete.
func (s *bookingService) DeleteBooking(ctx context.Context, caller *Caller, id primitive.ObjectID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && booking.UserID != caller.UserID {
		return ErrNotOwner
	}

	return s.bookingRepo.Delete(ctx, id)
}

// CalculatePrice quotes a rental without creating a booking. An unknown car
// id is an error rather than a zero-price quote.
func (s *bookingService) CalculatePrice(ctx context.Context, req *PriceRequest) (*PriceQuote, error) {
	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, err
	}
	return s.pricing.Quote(car.PricePerDay, req.StartDate, req.EndDate, req.Option)
}
