package services

import (
	"context"
	"testing"

	"carrent/internal/models"
	"carrent/internal/repositories/memory"
	"carrent/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	users := memory.NewUserRepository()
	cars := memory.NewCarRepository()
	bookings := memory.NewBookingRepository()
	cacheService := NewMemoryCacheService()

	svc := NewStatsService(cars, users, bookings, cacheService, logger.Default())

	require.NoError(t, users.Create(ctx, &models.User{Name: "Sara", Phone: "+15550001111"}))
	require.NoError(t, cars.Create(ctx, &models.Car{Name: "Corolla", Seats: 5, Transmission: models.TransmissionAutomatic, Available: true}))
	require.NoError(t, cars.Create(ctx, &models.Car{Name: "Alto", Seats: 4, Transmission: models.TransmissionManual, Available: false}))

	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusPending,
		models.BookingStatusApproved,
	} {
		require.NoError(t, bookings.Create(ctx, &models.Booking{
			CarID:  primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Status: status,
		}))
	}

	require.NoError(t, svc.RecordVisit(ctx))
	require.NoError(t, svc.RecordVisit(ctx))

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCars)
	assert.Equal(t, int64(1), stats.AvailableCars)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.BookingsByStatus[models.BookingStatusPending])
	assert.Equal(t, int64(1), stats.BookingsByStatus[models.BookingStatusApproved])
	assert.Equal(t, int64(0), stats.BookingsByStatus[models.BookingStatusRejected])
	assert.Equal(t, int64(2), stats.Visitors)
	assert.Len(t, stats.RecentBookings, 3)
}

func TestDashboardStatsEmpty(t *testing.T) {
	svc := NewStatsService(memory.NewCarRepository(), memory.NewUserRepository(), memory.NewBookingRepository(), NewMemoryCacheService(), logger.Default())

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.Equal(t, int64(0), stats.Visitors)
	assert.Empty(t, stats.RecentBookings)
}
