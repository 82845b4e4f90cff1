package memory

import (
	"context"
	"testing"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBooking(userID primitive.ObjectID, status models.BookingStatus) *models.Booking {
	return &models.Booking{
		CarID:    primitive.NewObjectID(),
		UserID:   userID,
		UserName: "Sara",
		Phone:    "+15550001111",
		Status:   status,
	}
}

func TestBookingRepositoryCreationOrder(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	var created []primitive.ObjectID
	for i := 0; i < 5; i++ {
		booking := newBooking(userID, models.BookingStatusPending)
		require.NoError(t, repo.Create(ctx, booking))
		created = append(created, booking.ID)
	}

	all, total, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	for i, booking := range all {
		assert.Equal(t, created[i], booking.ID)
	}

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, byUser, 5)
	assert.Equal(t, created[0], byUser[0].ID)
}

func TestBookingRepositoryCreateDefaultsStatus(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	booking := newBooking(primitive.NewObjectID(), "")
	require.NoError(t, repo.Create(ctx, booking))
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	booking = newBooking(primitive.NewObjectID(), "shipped")
	require.NoError(t, repo.Create(ctx, booking))
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	stored, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)

	// Valid seeded statuses are kept as-is
	booking = newBooking(primitive.NewObjectID(), models.BookingStatusApproved)
	require.NoError(t, repo.Create(ctx, booking))
	assert.Equal(t, models.BookingStatusApproved, booking.Status)
}

func TestBookingRepositoryPagination(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newBooking(primitive.NewObjectID(), models.BookingStatusPending)))
	}

	page, total, err := repo.List(ctx, &utils.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	// Past the end yields an empty page, not an error
	page, _, err = repo.List(ctx, &utils.PaginationParams{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestBookingRepositoryUpdateStatus(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	booking := newBooking(primitive.NewObjectID(), models.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	require.NoError(t, repo.UpdateStatus(ctx, booking.ID, models.BookingStatusApproved))

	stored, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, stored.Status)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt) || stored.UpdatedAt.Equal(stored.CreatedAt))

	err = repo.UpdateStatus(ctx, primitive.NewObjectID(), models.BookingStatusApproved)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestBookingRepositoryStatusFilter(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	pending := newBooking(primitive.NewObjectID(), models.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, pending))
	approved := newBooking(primitive.NewObjectID(), models.BookingStatusApproved)
	require.NoError(t, repo.Create(ctx, approved))

	bookings, total, err := repo.GetByStatus(ctx, models.BookingStatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, approved.ID, bookings[0].ID)

	count, err := repo.GetCountByStatus(ctx, models.BookingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBookingRepositoryDelete(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	booking := newBooking(primitive.NewObjectID(), models.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	require.NoError(t, repo.Delete(ctx, booking.ID))
	_, err := repo.GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	err = repo.Delete(ctx, booking.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestBookingRepositoryGetRecent(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	var created []primitive.ObjectID
	for i := 0; i < 4; i++ {
		booking := newBooking(primitive.NewObjectID(), models.BookingStatusPending)
		require.NoError(t, repo.Create(ctx, booking))
		created = append(created, booking.ID)
	}

	recent, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, created[3], recent[0].ID)
	assert.Equal(t, created[2], recent[1].ID)
}

func TestBookingRepositoryClonesRecords(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	booking := newBooking(primitive.NewObjectID(), models.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	// Mutating a returned record must not leak into the store
	fetched, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	fetched.Status = models.BookingStatusCompleted

	stored, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}
