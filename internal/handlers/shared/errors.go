package handlers

import (
	"errors"
	"net/http"

	"carrent/internal/repositories/interfaces"
	"carrent/internal/services"
	"carrent/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer errors into the API envelope.
// resource names the entity for not-found messages.
func respondServiceError(c *gin.Context, err error, resource string) {
	var transition *services.InvalidTransitionError

	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrAdminRequired), errors.Is(err, services.ErrNotOwner):
		utils.ForbiddenResponse(c)
	case errors.As(err, &transition):
		utils.ConflictResponse(c, transition.Error())
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrRentalTooLong),
		errors.Is(err, services.ErrCarUnavailable),
		errors.Is(err, services.ErrInvalidImageType),
		errors.Is(err, services.ErrSelfRoleChange),
		errors.Is(err, services.ErrPhoneNotVerified):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidOTP):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CODE", err.Error())
	case errors.Is(err, services.ErrOTPRateLimited):
		utils.RateLimitedResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
