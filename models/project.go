package models

import (
	"time"
)

// Project groups tickets and the users who handle them
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relations
	UserProjects []UserProject `json:"userProjects,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tickets      []Ticket      `json:"tickets,omitempty" gorm:"foreignKey:ProjectID"`
}
