package services

import (
	"context"
	"testing"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/repositories/memory"
	"carrent/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingTestEnv struct {
	svc      BookingService
	bookings interfaces.BookingRepository
	cars     interfaces.CarRepository
	users    interfaces.UserRepository
	renter   *models.User
	admin    *models.User
	car      *models.Car
}

func newBookingTestEnv(t *testing.T) *bookingTestEnv {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepository()
	cars := memory.NewCarRepository()
	bookings := memory.NewBookingRepository()

	renter := &models.User{Name: "Sara", Phone: "+15550001111", Role: models.RoleUser, IsPhoneVerified: true}
	require.NoError(t, users.Create(ctx, renter))
	admin := &models.User{Name: "Admin", Phone: "+15550002222", Role: models.RoleAdmin, IsPhoneVerified: true}
	require.NoError(t, users.Create(ctx, admin))

	car := &models.Car{
		Name:         "Toyota Corolla",
		PricePerDay:  30,
		Seats:        5,
		Transmission: models.TransmissionAutomatic,
		Available:    true,
	}
	require.NoError(t, cars.Create(ctx, car))

	svc := NewBookingService(bookings, cars, users, NewPricingService(DateRangeReject), nil, logger.Default())

	return &bookingTestEnv{
		svc:      svc,
		bookings: bookings,
		cars:     cars,
		users:    users,
		renter:   renter,
		admin:    admin,
		car:      car,
	}
}

func (e *bookingTestEnv) renterCaller() *Caller {
	return &Caller{UserID: e.renter.ID, Role: e.renter.Role}
}

func (e *bookingTestEnv) adminCaller() *Caller {
	return &Caller{UserID: e.admin.ID, Role: e.admin.Role}
}

func (e *bookingTestEnv) createBooking(t *testing.T) *models.Booking {
	t.Helper()
	booking, err := e.svc.CreateBooking(context.Background(), e.renter.ID, &CreateBookingRequest{
		CarID:     e.car.ID,
		StartDate: day(0),
		EndDate:   day(3),
		Option:    models.ExtraOptionGPS,
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingForcesPending(t *testing.T) {
	env := newBookingTestEnv(t)

	booking := env.createBooking(t)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 3, booking.Days)
	assert.Equal(t, 105.0, booking.TotalPrice)
	assert.Equal(t, env.renter.ID, booking.UserID)
	assert.False(t, booking.CreatedAt.IsZero())

	// Contact details fall back to the user record
	assert.Equal(t, "Sara", booking.UserName)
	assert.Equal(t, "+15550001111", booking.Phone)
}

func TestCreateBookingUnknownCar(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), env.renter.ID, &CreateBookingRequest{
		CarID:     primitive.NewObjectID(),
		StartDate: day(0),
		EndDate:   day(2),
	})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestCreateBookingUnavailableCar(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.cars.Update(ctx, env.car.ID, map[string]interface{}{"available": false}))

	_, err := env.svc.CreateBooking(ctx, env.renter.ID, &CreateBookingRequest{
		CarID:     env.car.ID,
		StartDate: day(0),
		EndDate:   day(2),
	})
	assert.ErrorIs(t, err, ErrCarUnavailable)
}

func TestCreateBookingInvalidDateRange(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), env.renter.ID, &CreateBookingRequest{
		CarID:     env.car.ID,
		StartDate: day(2),
		EndDate:   day(2),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	env := newBookingTestEnv(t)
	booking := env.createBooking(t)

	_, err := env.svc.UpdateStatus(context.Background(), env.renterCaller(), booking.ID, models.BookingStatusApproved)
	assert.ErrorIs(t, err, ErrAdminRequired)

	// The booking is untouched
	stored, err := env.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()
	booking := env.createBooking(t)

	updated, err := env.svc.UpdateStatus(ctx, env.adminCaller(), booking.ID, models.BookingStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)

	updated, err = env.svc.UpdateStatus(ctx, env.adminCaller(), booking.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	// pending cannot jump straight to completed
	booking := env.createBooking(t)
	_, err := env.svc.UpdateStatus(ctx, env.adminCaller(), booking.ID, models.BookingStatusCompleted)
	assert.True(t, IsInvalidTransition(err))

	// rejected is terminal
	rejected := env.createBooking(t)
	_, err = env.svc.UpdateStatus(ctx, env.adminCaller(), rejected.ID, models.BookingStatusRejected)
	require.NoError(t, err)
	for _, target := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusApproved,
		models.BookingStatusCompleted,
	} {
		_, err = env.svc.UpdateStatus(ctx, env.adminCaller(), rejected.ID, target)
		assert.True(t, IsInvalidTransition(err), "rejected -> %s should fail", target)
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.svc.UpdateStatus(context.Background(), env.adminCaller(), primitive.NewObjectID(), models.BookingStatusApproved)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestListUserBookingsOwnership(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	first := env.createBooking(t)
	second := env.createBooking(t)

	// Owners see their bookings in creation order
	bookings, err := env.svc.ListUserBookings(ctx, env.renterCaller(), env.renter.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, first.ID, bookings[0].ID)
	assert.Equal(t, second.ID, bookings[1].ID)

	// Another user's list is off limits
	_, err = env.svc.ListUserBookings(ctx, env.renterCaller(), env.admin.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// Admins may read anyone's
	bookings, err = env.svc.ListUserBookings(ctx, env.adminCaller(), env.renter.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestDeleteBookingOwnership(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	booking := env.createBooking(t)

	// A different non-admin user may not delete
	other := &models.User{Name: "Omar", Phone: "+15550003333", Role: models.RoleUser}
	require.NoError(t, env.users.Create(ctx, other))
	err := env.svc.DeleteBooking(ctx, &Caller{UserID: other.ID, Role: other.Role}, booking.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// The owner may
	require.NoError(t, env.svc.DeleteBooking(ctx, env.renterCaller(), booking.ID))
	_, err = env.bookings.GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	// So may an admin
	booking = env.createBooking(t)
	require.NoError(t, env.svc.DeleteBooking(ctx, env.adminCaller(), booking.ID))
}

func TestCarDeleteDoesNotCascade(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	booking := env.createBooking(t)
	require.NoError(t, env.cars.Delete(ctx, env.car.ID))

	// The booking survives with a dangling car reference
	stored, err := env.bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, env.car.ID, stored.CarID)

	// New quotes against the deleted car fail
	_, err = env.svc.CalculatePrice(ctx, &PriceRequest{
		CarID:     env.car.ID,
		StartDate: day(0),
		EndDate:   day(2),
	})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestCalculatePriceMatchesBooking(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	quote, err := env.svc.CalculatePrice(ctx, &PriceRequest{
		CarID:     env.car.ID,
		StartDate: day(0),
		EndDate:   day(3),
		Option:    models.ExtraOptionGPS,
	})
	require.NoError(t, err)

	booking := env.createBooking(t)
	assert.Equal(t, quote.Total, booking.TotalPrice)
	assert.Equal(t, quote.Days, booking.Days)
}

func TestListBookingsByStatus(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	first := env.createBooking(t)
	env.createBooking(t)

	_, err := env.svc.UpdateStatus(ctx, env.adminCaller(), first.ID, models.BookingStatusApproved)
	require.NoError(t, err)

	approved := models.BookingStatusApproved
	bookings, total, err := env.svc.ListBookings(ctx, &approved, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, first.ID, bookings[0].ID)

	bookings, total, err = env.svc.ListBookings(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, bookings, 2)
}
