package services

import (
	"context"
	"testing"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/repositories/memory"
	"carrent/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserTestEnv(t *testing.T) (UserService, *models.User, *models.User) {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepository()
	admin := &models.User{Name: "Admin", Phone: "+15550002222", Role: models.RoleAdmin, IsPhoneVerified: true}
	require.NoError(t, users.Create(ctx, admin))
	user := &models.User{Name: "Sara", Phone: "+15550001111", Role: models.RoleUser, IsPhoneVerified: true}
	require.NoError(t, users.Create(ctx, user))

	return NewUserService(users, logger.Default()), admin, user
}

func TestUpdateRole(t *testing.T) {
	svc, admin, user := newUserTestEnv(t)
	ctx := context.Background()
	caller := &Caller{UserID: admin.ID, Role: admin.Role}

	updated, err := svc.UpdateRole(ctx, caller, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	// Demote back
	updated, err = svc.UpdateRole(ctx, caller, user.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, updated.Role)
}

func TestUpdateRoleGuards(t *testing.T) {
	svc, admin, user := newUserTestEnv(t)
	ctx := context.Background()

	// Non-admin callers are refused
	_, err := svc.UpdateRole(ctx, &Caller{UserID: user.ID, Role: user.Role}, admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrAdminRequired)

	// Admins cannot change their own role
	_, err = svc.UpdateRole(ctx, &Caller{UserID: admin.ID, Role: admin.Role}, admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrSelfRoleChange)

	_, err = svc.UpdateRole(ctx, &Caller{UserID: admin.ID, Role: admin.Role}, primitive.NewObjectID(), models.RoleUser)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, admin, user := newUserTestEnv(t)
	ctx := context.Background()

	err := svc.DeleteUser(ctx, &Caller{UserID: user.ID, Role: user.Role}, user.ID)
	assert.ErrorIs(t, err, ErrAdminRequired)

	require.NoError(t, svc.DeleteUser(ctx, &Caller{UserID: admin.ID, Role: admin.Role}, user.ID))
	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
