package routes

import (
	"carrent/internal/handlers/shared"
	"carrent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up booking creation, listing and lifecycle routes
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	bookings := r.Group("/bookings")
	{
		// Public quote
		bookings.POST("/calculate-price", bookingHandler.CalculatePrice)

		// Authenticated renter operations
		auth := bookings.Group("")
		auth.Use(middleware.AuthRequired(jwtSecret))
		{
			auth.POST("", bookingHandler.CreateBooking)
			auth.GET("/user/:id", bookingHandler.ListUserBookings)
			auth.DELETE("/:id", bookingHandler.DeleteBooking)
		}

		// Admin console
		admin := bookings.Group("")
		admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
		{
			admin.GET("", bookingHandler.ListBookings)
			admin.PATCH("/:id/status", bookingHandler.UpdateStatus)
		}
	}
}
