package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/dto"
)

// ListNotifications returns the caller's notifications newest first
func ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notifications, err := notificationService.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns the caller's unread notification count
func GetUnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := notificationService.UnreadCount(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// MarkNotificationRead flags one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	notification, err := notificationService.MarkAsRead(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
