package middleware

import (
	"fmt"
	"strings"

	"carrent/internal/models"
	"carrent/internal/services"
	"carrent/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// AuthRequired validates the bearer token and stores the caller's identity in
// the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		userIDHex, _ := claims["user_id"].(string)
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, models.Role(role))
		c.Next()
	}
}

// AdminRequired gates admin-only routes. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists || role.(models.Role) != models.RoleAdmin {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFromContext extracts the authenticated caller set by AuthRequired.
func CallerFromContext(c *gin.Context) (*services.Caller, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return nil, false
	}
	role, exists := c.Get(ContextUserRole)
	if !exists {
		return nil, false
	}
	return &services.Caller{
		UserID: userID.(primitive.ObjectID),
		Role:   role.(models.Role),
	}, true
}
