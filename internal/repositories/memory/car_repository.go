package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type carRepository struct {
	mu    sync.RWMutex
	cars  map[primitive.ObjectID]*models.Car
	order []primitive.ObjectID
}

func NewCarRepository() interfaces.CarRepository {
	return &carRepository{
		cars: make(map[primitive.ObjectID]*models.Car),
	}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car.ID = primitive.NewObjectID()
	car.CreatedAt = time.Now()
	car.UpdatedAt = time.Now()

	clone := *car
	r.cars[car.ID] = &clone
	r.order = append(r.order, car.ID)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	clone := *car
	return &clone, nil
}

func (r *carRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[id]
	if !ok {
		return interfaces.ErrNotFound
	}

	for field, value := range updates {
		switch field {
		case "name":
			if v, ok := value.(string); ok {
				car.Name = v
			}
		case "price_per_day":
			if v, ok := value.(float64); ok {
				car.PricePerDay = v
			}
		case "seats":
			if v, ok := value.(int); ok {
				car.Seats = v
			}
		case "transmission":
			switch v := value.(type) {
			case models.Transmission:
				car.Transmission = v
			case string:
				car.Transmission = models.Transmission(v)
			}
		case "brand":
			if v, ok := value.(string); ok {
				car.Brand = v
			}
		case "description":
			if v, ok := value.(string); ok {
				car.Description = v
			}
		case "fuel_type":
			if v, ok := value.(string); ok {
				car.FuelType = v
			}
		case "mileage":
			if v, ok := value.(int); ok {
				car.Mileage = v
			}
		case "features":
			if v, ok := value.([]string); ok {
				car.Features = v
			}
		case "image":
			if v, ok := value.(string); ok {
				car.Image = v
			}
		case "thumbnail":
			if v, ok := value.(string); ok {
				car.Thumbnail = v
			}
		case "available":
			if v, ok := value.(bool); ok {
				car.Available = v
			}
		}
	}
	car.UpdatedAt = time.Now()
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.cars, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *carRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.Car, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.cars[id]
		all = append(all, &clone)
	}

	total := int64(len(all))
	page := paginate(len(all), params)
	return all[page.start:page.end], total, nil
}

func (r *carRepository) Search(ctx context.Context, query string, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var matched []*models.Car
	for _, id := range r.order {
		car := r.cars[id]
		if strings.Contains(strings.ToLower(car.Name), query) ||
			strings.Contains(strings.ToLower(car.Brand), query) ||
			strings.Contains(strings.ToLower(car.Description), query) {
			clone := *car
			matched = append(matched, &clone)
		}
	}

	total := int64(len(matched))
	page := paginate(len(matched), params)
	return matched[page.start:page.end], total, nil
}

func (r *carRepository) GetTotalCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.cars)), nil
}

func (r *carRepository) GetAvailableCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, car := range r.cars {
		if car.Available {
			count++
		}
	}
	return count, nil
}
