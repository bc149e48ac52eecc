package models

import (
	"time"
)

// NotificationType represents the ticket lifecycle event behind a notification
type NotificationType string

const (
	NotificationTicketCreated       NotificationType = "ticket_created"
	NotificationTicketAssigned      NotificationType = "ticket_assigned"
	NotificationTicketStatusChanged NotificationType = "ticket_status_changed"
	NotificationTicketUpdated       NotificationType = "ticket_updated"
)

// Notification is an in-app message materialized on a ticket lifecycle event.
// Display fields (ticket title, project name, creator name, description summary)
// are denormalized so the client can render without extra lookups.
type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"userId" gorm:"not null;index"`
	TicketID  uint             `json:"ticketId" gorm:"not null;index"`
	ProjectID *uint            `json:"projectId"`
	Type      NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	Message   string           `json:"message" gorm:"not null"`

	TicketTitle        string `json:"ticketTitle"`
	ProjectName        string `json:"projectName"`
	CreatorName        string `json:"creatorName"`
	DescriptionSummary string `json:"descriptionSummary"`

	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User    User     `json:"-" gorm:"foreignKey:UserID"`
	Ticket  Ticket   `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
