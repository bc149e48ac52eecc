package models

import (
	"time"
)

// TicketPriority represents how urgent a ticket is
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// Label returns the display label for a priority.
func (p TicketPriority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// TicketStatus represents where a ticket is in its lifecycle
type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusPending  TicketStatus = "pending"
	StatusResolved TicketStatus = "resolved"
	StatusClosed   TicketStatus = "closed"
)

// Label returns the display label for a status.
func (s TicketStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusPending:
		return "Pending"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Ticket represents a support ticket
type Ticket struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority" gorm:"type:varchar(10);default:'low'"`
	Status      TicketStatus   `json:"status" gorm:"type:varchar(10);default:'open'"`
	CreatedAt   time.Time      `json:"createdAt"`

	CreatedByUserID  uint  `json:"createdByUserId" gorm:"not null;index"`
	AssignedToUserID *uint `json:"assignedToUserId" gorm:"index"`
	ProjectID        *uint `json:"projectId" gorm:"index"`

	// Relations
	CreatedByUser  User     `json:"createdByUser,omitempty" gorm:"foreignKey:CreatedByUserID"`
	AssignedToUser *User    `json:"assignedToUser,omitempty" gorm:"foreignKey:AssignedToUserID;constraint:OnDelete:SET NULL"`
	Project        *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
