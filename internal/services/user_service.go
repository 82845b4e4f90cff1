package services

import (
	"context"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"
	"carrent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
	UpdateRole(ctx context.Context, caller *Caller, id primitive.ObjectID, role models.Role) (*models.User, error)
	DeleteUser(ctx context.Context, caller *Caller, id primitive.ObjectID) error
}

type userService struct {
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   log,
	}
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

// UpdateRole changes a user's role. Admins may not demote themselves, which
// keeps at least one admin reachable.
func (s *userService) UpdateRole(ctx context.Context, caller *Caller, id primitive.ObjectID, role models.Role) (*models.User, error) {
	if err := authorizeAdmin(caller); err != nil {
		return nil, err
	}
	if caller.UserID == id {
		return nil, ErrSelfRoleChange
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": id.Hex(),
		"role":    string(role),
	}).Info("User role updated")

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, caller *Caller, id primitive.ObjectID) error {
	if err := authorizeAdmin(caller); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("user_id", id.Hex()).Info("User deleted")
	return nil
}
