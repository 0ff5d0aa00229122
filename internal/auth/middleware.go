package auth

import (
	"net/http"
	"strings"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "currentUser"
)

// RequireAuth creates a gin middleware that guards protected routes.
// It expects an "Authorization: Bearer <token>" header, verifies the token
// and resolves it to a live user record. All failure branches answer 401;
// only the message differs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, no token provided",
			})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, token failed",
			})
			return
		}

		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached to the request by RequireAuth.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.MustGet(ContextUserKey).(models.User)
	return user
}
