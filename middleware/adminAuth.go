package middleware

import (
	"net/http"

	"gbclean/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates staff endpoints behind the shared admin secret.
// The token travels in the X-Admin-Token header and must match exactly; an
// unset ADMIN_TOKEN rejects everything.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		secret := config.AppConfig.AdminToken

		if secret == "" || token == "" || token != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
