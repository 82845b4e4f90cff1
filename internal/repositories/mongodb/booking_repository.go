package mongodb

import (
	"context"
	"fmt"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewBookingRepository(db *mongo.Database, cache CacheService) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
		cache:      cache,
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	// New bookings always enter the lifecycle at pending
	if !booking.Status.IsValid() {
		booking.Status = models.BookingStatusPending
	}

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	// Try cache first
	if booking := r.getBookingFromCache(ctx, id.Hex()); booking != nil {
		return booking, nil
	}

	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	r.cacheBooking(ctx, &booking)

	return &booking, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateBookingCache(ctx, id.Hex())

	return nil
}

func (r *bookingRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return r.findPage(ctx, bson.M{}, params)
}

func (r *bookingRepository) GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return r.findPage(ctx, bson.M{"status": status}, params)
}

func (r *bookingRepository) findPage(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, total, nil
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// Cache helpers
func (r *bookingRepository) cacheBooking(ctx context.Context, booking *models.Booking) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, utils.CacheBookingPrefix+booking.ID.Hex(), booking, 5*time.Minute)
}

func (r *bookingRepository) getBookingFromCache(ctx context.Context, id string) *models.Booking {
	if r.cache == nil {
		return nil
	}

	var booking models.Booking
	if err := r.cache.Get(ctx, utils.CacheBookingPrefix+id, &booking); err != nil {
		return nil
	}
	return &booking
}

func (r *bookingRepository) invalidateBookingCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, utils.CacheBookingPrefix+id)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateBookingCache(ctx, id.Hex())

	return nil
}

func (r *bookingRepository) UpdateDeliveryLocation(ctx context.Context, id primitive.ObjectID, location *models.GeoPoint) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"delivery_location": location,
			"updated_at":        time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery location: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateBookingCache(ctx, id.Hex())

	return nil
}

func (r *bookingRepository) GetTotalCount(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *bookingRepository) GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *bookingRepository) GetRecent(ctx context.Context, limit int) ([]*models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}
