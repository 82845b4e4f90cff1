// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. Listings preserve insertion order. Intended for tests
// and local development without a MongoDB instance.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
	order []primitive.ObjectID
}

func NewUserRepository() interfaces.UserRepository {
	return &userRepository{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Phone = utils.NormalizePhone(user.Phone)
	for _, existing := range r.users {
		if existing.Phone == user.Phone {
			return fmt.Errorf("user with phone %s already exists", user.Phone)
		}
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	clone := *user
	r.users[user.ID] = &clone
	r.order = append(r.order, user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phone = utils.NormalizePhone(phone)
	for _, id := range r.order {
		if r.users[id].Phone == phone {
			clone := *r.users[id]
			return &clone, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return interfaces.ErrNotFound
	}

	for field, value := range updates {
		switch field {
		case "name":
			if v, ok := value.(string); ok {
				user.Name = v
			}
		case "email":
			if v, ok := value.(string); ok {
				user.Email = v
			}
		case "role":
			switch v := value.(type) {
			case models.Role:
				user.Role = v
			case string:
				user.Role = models.Role(v)
			}
		case "is_phone_verified":
			if v, ok := value.(bool); ok {
				user.IsPhoneVerified = v
			}
		case "last_login_at":
			if v, ok := value.(*time.Time); ok {
				user.LastLoginAt = v
			}
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) error {
	return r.Update(ctx, id, map[string]interface{}{"role": role})
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.users[id]
		all = append(all, &clone)
	}

	total := int64(len(all))
	page := paginate(len(all), params)
	return all[page.start:page.end], total, nil
}

func (r *userRepository) GetTotalCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}
