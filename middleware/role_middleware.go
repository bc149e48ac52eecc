package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/models"
)

// AdminMiddleware creates a middleware that ensures the user has admin role.
// This middleware should be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin)
}

// TriageMiddleware creates a middleware for routes restricted to the roles
// that triage tickets (admin and receiver). Use after AuthMiddleware.
func TriageMiddleware() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin, models.RoleReceiver)
}

func requireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, allowed := range roles {
				if roleStr == string(allowed) {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"message": "Insufficient privileges",
		})
		c.Abort()
	}
}
