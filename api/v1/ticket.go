package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/dto"
)

// ListTickets returns the tickets visible to the caller, newest first.
// Privileged roles see every ticket; appliers only their own.
func ListTickets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tickets, err := ticketService.ListTickets(userID, isPrivileged(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetTicket returns one ticket under the caller's visibility filter
func GetTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := ticketService.GetTicket(id, userID, isPrivileged(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// CreateTicket creates a ticket owned by the caller. Status is always open.
func CreateTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	ticket, err := ticketService.CreateTicket(req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicket replaces the ticket's mutable fields
func UpdateTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	ticket, err := ticketService.UpdateTicket(id, req, userID, isPrivileged(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket removes a ticket
func DeleteTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ticketService.DeleteTicket(id, userID, isPrivileged(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignTicket sets the ticket assignee. Route is gated to triaging roles.
func AssignTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	ticket, err := ticketService.AssignTicket(id, req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
