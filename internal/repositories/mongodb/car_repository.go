package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type carRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCarRepository(db *mongo.Database, cache CacheService) interfaces.CarRepository {
	return &carRepository{
		collection: db.Collection("cars"),
		cache:      cache,
	}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	car.ID = primitive.NewObjectID()
	car.CreatedAt = time.Now()
	car.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, car)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	r.cacheCar(ctx, car)

	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	// Try cache first
	if car := r.getCarFromCache(ctx, id.Hex()); car != nil {
		return car, nil
	}

	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	r.cacheCar(ctx, &car)

	return &car, nil
}

func (r *carRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateCarCache(ctx, id.Hex())

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateCarCache(ctx, id.Hex())

	return nil
}

func (r *carRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cars: %w", err)
	}

	return cars, total, nil
}

func (r *carRepository) Search(ctx context.Context, query string, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	filter := bson.M{}
	if query != "" {
		// Literal substring match, query metacharacters are escaped
		regex := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
		filter = bson.M{"$or": []bson.M{
			{"name": regex},
			{"brand": regex},
			{"description": regex},
		}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cars: %w", err)
	}

	return cars, total, nil
}

func (r *carRepository) GetTotalCount(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *carRepository) GetAvailableCount(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"available": true})
}

// Cache helpers
func (r *carRepository) cacheCar(ctx context.Context, car *models.Car) {
	if r.cache == nil {
		return
	}
	key := utils.CacheCarPrefix + car.ID.Hex()
	r.cache.Set(ctx, key, car, 15*time.Minute)
}

func (r *carRepository) getCarFromCache(ctx context.Context, id string) *models.Car {
	if r.cache == nil {
		return nil
	}

	var car models.Car
	if err := r.cache.Get(ctx, utils.CacheCarPrefix+id, &car); err != nil {
		return nil
	}
	return &car
}

func (r *carRepository) invalidateCarCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, utils.CacheCarPrefix+id)
}
