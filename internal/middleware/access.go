package middleware

import (
	"net/http"

	"bengkel/internal/access"
	"bengkel/internal/domain"
	"bengkel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Require gates a route group behind the capability table for resource.
func Require(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !access.Allowed(domain.Role(role.(string)), resource) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
