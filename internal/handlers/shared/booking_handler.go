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

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking creates a booking for the authenticated user
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateBookingCreate(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	carID, err := primitive.ObjectIDFromHex(request.CarID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}
	startDate, endDate := validators.ParseDates(request.StartDate, request.EndDate)

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), caller.UserID, &services.CreateBookingRequest{
		CarID:      carID,
		UserName:   utils.SanitizeString(request.UserName),
		Phone:      request.Phone,
		StartDate:  startDate,
		EndDate:    endDate,
		Option:     models.ExtraOption(request.Option),
		Address:    utils.SanitizeString(request.Address),
		Collateral: utils.SanitizeString(request.Collateral),
	})
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.CreatedResponse(c, "Booking created", booking)
}

// ListBookings returns all bookings, optionally filtered by status
func (h *BookingHandler) ListBookings(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseBookingStatus(raw)
		if err != nil {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		status = &parsed
	}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, utils.CreatePaginationMeta(params, total))
}

// ListUserBookings returns a user's bookings in creation order
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
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

	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), caller, userID)
	if err != nil {
		respondServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponse(c, "Bookings retrieved", bookings)
}

// UpdateStatus moves a booking along its lifecycle
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var request validators.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateBookingStatus(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), caller, bookingID, models.BookingStatus(request.Status))
	if err != nil {
		respondServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponse(c, "Booking status updated", booking)
}

// DeleteBooking removes a booking (owner or admin)
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), caller, bookingID); err != nil {
		respondServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponse(c, "Booking deleted", nil)
}

// CalculatePrice quotes a rental without creating a booking
func (h *BookingHandler) CalculatePrice(c *gin.Context) {
	var request validators.PriceCalcRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidatePriceCalc(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	carID, err := primitive.ObjectIDFromHex(request.CarID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}
	startDate, endDate := validators.ParseDates(request.StartDate, request.EndDate)

	quote, err := h.bookingService.CalculatePrice(c.Request.Context(), &services.PriceRequest{
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
		Option:    models.ExtraOption(request.Option),
	})
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponse(c, "Price calculated", quote)
}
