package handlers

import (
	"carrent/internal/services"
	"carrent/internal/utils"
	"carrent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SendCode sends a one-time verification code to a phone number
func (h *AuthHandler) SendCode(c *gin.Context) {
	var request validators.SendCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateSendCode(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.authService.SendCode(c.Request.Context(), request.Phone); err != nil {
		respondServiceError(c, err, "Phone")
		return
	}

	utils.SuccessResponse(c, "Verification code sent", nil)
}

// VerifyCode verifies a one-time code and signs the user in
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var request validators.VerifyCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVerifyCode(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	response, err := h.authService.VerifyCode(c.Request.Context(), request.Phone, request.Code)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Phone verified", response)
}

// SignIn issues a token for an already verified phone
func (h *AuthHandler) SignIn(c *gin.Context) {
	var request validators.SignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateSignIn(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	response, err := h.authService.SignIn(c.Request.Context(), request.Phone)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Signed in", response)
}

// Profile returns the authenticated user's profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), userID.(primitive.ObjectID))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", user)
}
