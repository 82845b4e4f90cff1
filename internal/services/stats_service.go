package services

import (
	"context"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"
	"carrent/pkg/logger"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	RecordVisit(ctx context.Context) error
}

type DashboardStats struct {
	TotalCars        int64                          `json:"total_cars"`
	AvailableCars    int64                          `json:"available_cars"`
	TotalUsers       int64                          `json:"total_users"`
	TotalBookings    int64                          `json:"total_bookings"`
	BookingsByStatus map[models.BookingStatus]int64 `json:"bookings_by_status"`
	Visitors         int64                          `json:"visitors"`
	RecentBookings   []*models.Booking              `json:"recent_bookings"`
}

type statsService struct {
	carRepo     interfaces.CarRepository
	userRepo    interfaces.UserRepository
	bookingRepo interfaces.BookingRepository
	cache       CacheService
	logger      *logger.Logger
}

func NewStatsService(
	carRepo interfaces.CarRepository,
	userRepo interfaces.UserRepository,
	bookingRepo interfaces.BookingRepository,
	cache CacheService,
	log *logger.Logger,
) StatsService {
	return &statsService{
		carRepo:     carRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      log,
	}
}

func (s *statsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		BookingsByStatus: make(map[models.BookingStatus]int64),
	}

	var err error
	if stats.TotalCars, err = s.carRepo.GetTotalCount(ctx); err != nil {
		return nil, err
	}
	if stats.AvailableCars, err = s.carRepo.GetAvailableCount(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.GetTotalCount(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookingRepo.GetTotalCount(ctx); err != nil {
		return nil, err
	}

	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusApproved,
		models.BookingStatusRejected,
		models.BookingStatusCompleted,
	} {
		count, err := s.bookingRepo.GetCountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats.BookingsByStatus[status] = count
	}

	if stats.RecentBookings, err = s.bookingRepo.GetRecent(ctx, utils.RecentBookingsLimit); err != nil {
		return nil, err
	}

	// Missing counter reads as zero
	var visitors int64
	if err := s.cache.Get(ctx, utils.CacheVisitorCounter, &visitors); err != nil && err != ErrCacheMiss {
		s.logger.WithError(err).Warn("Failed to read visitor counter")
	}
	stats.Visitors = visitors

	return stats, nil
}

// RecordVisit bumps the visitor counter. Called from middleware, failures are
// swallowed so a cache outage never breaks a request.
func (s *statsService) RecordVisit(ctx context.Context) error {
	_, err := s.cache.Increment(ctx, utils.CacheVisitorCounter)
	return err
}
