package middleware

import (
	"strings"

	"notemark/services"
	"notemark/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user identity, rejecting
// missing, invalid, expired, and refresh-type tokens with 401. On success
// the user id is stored in the context under "user_id".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.ParseToken(tokenString, "access")
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
