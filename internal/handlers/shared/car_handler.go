package handlers

import (
	"carrent/internal/models"
	"carrent/internal/services"
	"carrent/internal/utils"
	"carrent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarHandler struct {
	carService services.CarService
}

func NewCarHandler(carService services.CarService) *CarHandler {
	return &CarHandler{
		carService: carService,
	}
}

// ListCars returns the fleet with pagination
func (h *CarHandler) ListCars(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	cars, total, err := h.carService.ListCars(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponseWithMeta(c, "Cars retrieved", cars, utils.CreatePaginationMeta(params, total))
}

// SearchCars searches the fleet by name, brand or description
func (h *CarHandler) SearchCars(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	query := c.Query("q")

	cars, total, err := h.carService.SearchCars(c.Request.Context(), query, params)
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponseWithMeta(c, "Cars retrieved", cars, utils.CreatePaginationMeta(params, total))
}

// GetCar returns a single car by id
func (h *CarHandler) GetCar(c *gin.Context) {
	carID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), carID)
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponse(c, "Car retrieved", car)
}

// CreateCar adds a car to the fleet
func (h *CarHandler) CreateCar(c *gin.Context) {
	var request validators.CarCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCarCreate(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	available := true
	if request.Available != nil {
		available = *request.Available
	}

	car := &models.Car{
		Name:         utils.SanitizeString(request.Name),
		PricePerDay:  request.PricePerDay,
		Seats:        request.Seats,
		Transmission: models.Transmission(request.Transmission),
		Brand:        utils.SanitizeString(request.Brand),
		Description:  utils.SanitizeString(request.Description),
		FuelType:     request.FuelType,
		Mileage:      request.Mileage,
		Features:     request.Features,
		Image:        request.Image,
		Available:    available,
	}

	if err := h.carService.CreateCar(c.Request.Context(), car); err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.CreatedResponse(c, "Car created", car)
}

// UpdateCar applies a partial update to a car
func (h *CarHandler) UpdateCar(c *gin.Context) {
	carID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}

	var request validators.CarUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCarUpdate(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), carID, updates)
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponse(c, "Car updated", car)
}

// DeleteCar removes a car from the fleet
func (h *CarHandler) DeleteCar(c *gin.Context) {
	carID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), carID); err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponse(c, "Car deleted", nil)
}

// UploadImage stores a car image and its thumbnail
func (h *CarHandler) UploadImage(c *gin.Context) {
	carID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid car ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image file")
		return
	}
	defer file.Close()

	car, err := h.carService.UploadImage(c.Request.Context(), carID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		respondServiceError(c, err, "Car")
		return
	}

	utils.SuccessResponse(c, "Image uploaded", car)
}
