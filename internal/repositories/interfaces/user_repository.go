package interfaces

import (
	"context"

	"carrent/internal/models"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Phone is the primary identifier
	GetByPhone(ctx context.Context, phone string) (*models.User, error)

	// Role management
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) error

	// Listing
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)

	// Analytics
	GetTotalCount(ctx context.Context) (int64, error)
}
