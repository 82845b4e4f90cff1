package memory

import (
	"context"
	"sync"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingRepository struct {
	mu       sync.RWMutex
	bookings map[primitive.ObjectID]*models.Booking
	order    []primitive.ObjectID
}

func NewBookingRepository() interfaces.BookingRepository {
	return &bookingRepository{
		bookings: make(map[primitive.ObjectID]*models.Booking),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	// New bookings always enter the lifecycle at pending
	if !booking.Status.IsValid() {
		booking.Status = models.BookingStatusPending
	}

	clone := *booking
	r.bookings[booking.ID] = &clone
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	clone := *booking
	return &clone, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.bookings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *bookingRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.collect(func(*models.Booking) bool { return true })
	total := int64(len(all))
	page := paginate(len(all), params)
	return all[page.start:page.end], total, nil
}

func (r *bookingRepository) GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.collect(func(b *models.Booking) bool { return b.Status == status })
	total := int64(len(matched))
	page := paginate(len(matched), params)
	return matched[page.start:page.end], total, nil
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(b *models.Booking) bool { return b.UserID == userID }), nil
}

// collect returns clones in insertion order. Callers must hold the lock.
func (r *bookingRepository) collect(match func(*models.Booking) bool) []*models.Booking {
	result := make([]*models.Booking, 0)
	for _, id := range r.order {
		if match(r.bookings[id]) {
			clone := *r.bookings[id]
			result = append(result, &clone)
		}
	}
	return result
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *bookingRepository) UpdateDeliveryLocation(ctx context.Context, id primitive.ObjectID, location *models.GeoPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	booking.DeliveryLocation = location
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *bookingRepository) GetTotalCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.bookings)), nil
}

func (r *bookingRepository) GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, booking := range r.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *bookingRepository) GetRecent(ctx context.Context, limit int) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.collect(func(*models.Booking) bool { return true })
	// Newest first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
