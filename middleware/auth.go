package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests that SessionMiddleware did not bind to a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
