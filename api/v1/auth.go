package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/config"
	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/services"
)

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	authResponse, err := services.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}

	// Set token as HttpOnly cookie for browser clients; the token is also in
	// the response body for clients that prefer Bearer auth
	maxAge := config.GetEnvInt("JWT_EXPIRY_HOURS", 24) * 3600
	c.SetCookie("access_token", authResponse.Token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, authResponse)
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := userService.GetUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
