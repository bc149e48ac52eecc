package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleApplier  Role = "applier"
	RoleReceiver Role = "receiver"
	RoleAdmin    Role = "admin"
)

// IsPrivileged reports whether the role sees and triages every ticket.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleReceiver
}

// User represents a user in the system
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Password hash is not exposed in JSON
	Role         Role      `json:"role" gorm:"type:varchar(10);default:'applier'"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	CreatedTickets  []Ticket      `json:"createdTickets,omitempty" gorm:"foreignKey:CreatedByUserID"`
	AssignedTickets []Ticket      `json:"assignedTickets,omitempty" gorm:"foreignKey:AssignedToUserID"`
	UserProjects    []UserProject `json:"userProjects,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
