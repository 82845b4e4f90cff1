package handlers

import (
	"carrent/internal/middleware"
	"carrent/internal/models"
	"carrent/internal/services"
	"carrent/internal/utils"
	"carrent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all users with pagination
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved", users, utils.CreatePaginationMeta(params, total))
}

// UpdateRole changes a user's role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var request validators.UserRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateUserRole(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), caller, userID, models.Role(request.Role))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User role updated", user)
}

// DeleteUser removes a user account
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), caller, userID); err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User deleted", nil)
}
