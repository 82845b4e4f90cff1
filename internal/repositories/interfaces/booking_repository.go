package interfaces

import (
	"context"

	"carrent/internal/models"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository is the persistence facade for bookings. Listings preserve
// creation order; the backing store is swappable (MongoDB in production,
// in-memory in tests) without changing the contract.
type BookingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing and filtering
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	UpdateDeliveryLocation(ctx context.Context, id primitive.ObjectID, location *models.GeoPoint) error

	// Analytics
	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Booking, error)
}
