// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"goodjob/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware requires a valid bearer token and stores its subject as
// "userID" in the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token", err.Error())
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
