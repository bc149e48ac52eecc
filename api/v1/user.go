package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/dto"
)

// ListUsers returns all users ordered by name
func ListUsers(c *gin.Context) {
	users, err := userService.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns one user
func GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := userService.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser creates a user with an admin-chosen role
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	user, err := userService.CreateUser(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser changes a user's name, email and role
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	user, err := userService.UpdateUser(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user who has not created tickets
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := userService.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
