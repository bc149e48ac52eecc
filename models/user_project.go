package models

import (
	"time"
)

// UserProject links a user to a project. The (user, project) pair is unique.
type UserProject struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID  uint      `json:"projectId" gorm:"not null;uniqueIndex:idx_user_project"`
	AssignedAt time.Time `json:"assignedAt"`

	// Relations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
