package dto

import (
	"github.com/ticketdesk-simple/models"
)

// CreateTicketRequest is the ticket creation payload.
// Status is accepted but ignored: new tickets always start open.
type CreateTicketRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Priority    models.TicketPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      string                `json:"status"`
	ProjectID   *uint                 `json:"projectId"`
}

// UpdateTicketRequest replaces title, description, priority and status in full
type UpdateTicketRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Priority    models.TicketPriority `json:"priority" binding:"required,oneof=low medium high"`
	Status      models.TicketStatus   `json:"status" binding:"required,oneof=open pending resolved closed"`
}

// AssignTicketRequest sets the ticket assignee
type AssignTicketRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
