package routes

import (
	"carrent/internal/handlers/shared"
	"carrent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up phone verification and sign-in routes
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/send-code", authHandler.SendCode)
		auth.POST("/verify-code", authHandler.VerifyCode)
		auth.POST("/signin", authHandler.SignIn)

		auth.GET("/profile", middleware.AuthRequired(jwtSecret), authHandler.Profile)
	}
}
