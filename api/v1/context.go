package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/models"
)

// currentUserID reads the authenticated user id set by AuthMiddleware. When
// missing it writes a 401 response and returns false.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	id, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	return id, true
}

// isPrivileged reports whether the caller holds a role that sees every ticket
func isPrivileged(c *gin.Context) bool {
	role, _ := c.Get("role")
	roleStr, ok := role.(string)
	return ok && models.Role(roleStr).IsPrivileged()
}

// pathID parses the :id route parameter. On failure it writes a 400 response
// and returns false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
