package routes

import (
	"carrent/internal/handlers/shared"
	"carrent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCarRoutes sets up fleet browsing and admin fleet management routes
func SetupCarRoutes(r *gin.RouterGroup, carHandler *handlers.CarHandler, jwtSecret string) {
	cars := r.Group("/cars")
	{
		// Public browsing
		cars.GET("", carHandler.ListCars)
		cars.GET("/search", carHandler.SearchCars)
		cars.GET("/:id", carHandler.GetCar)

		// Fleet management (admin only)
		admin := cars.Group("")
		admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
		{
			admin.POST("", carHandler.CreateCar)
			admin.PUT("/:id", carHandler.UpdateCar)
			admin.DELETE("/:id", carHandler.DeleteCar)
			admin.POST("/:id/image", carHandler.UploadImage)
		}
	}
}
