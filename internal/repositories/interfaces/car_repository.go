package interfaces

import (
	"context"

	"carrent/internal/models"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing and search
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Car, int64, error)
	Search(ctx context.Context, query string, params *utils.PaginationParams) ([]*models.Car, int64, error)

	// Analytics
	GetTotalCount(ctx context.Context) (int64, error)
	GetAvailableCount(ctx context.Context) (int64, error)
}
