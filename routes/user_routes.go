package routes

import (
	"carrent/internal/handlers/shared"
	"carrent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the admin user-management and dashboard routes
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, adminHandler *handlers.AdminHandler, jwtSecret string) {
	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		users.GET("", userHandler.ListUsers)
		users.PATCH("/:id/role", userHandler.UpdateRole)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/stats", adminHandler.GetStats)
	}
}
