package dto

import (
	"time"

	"github.com/ticketdesk-simple/models"
)

// CreateProjectRequest is the project creation payload
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	UserIDs     []uint `json:"userIds"`
}

// UpdateProjectRequest replaces name, description and the full member set
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	UserIDs     []uint `json:"userIds"`
}

// AssignUsersRequest adds members to a project without removing existing ones
type AssignUsersRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

// ProjectResponse is a project with its resolved member list
type ProjectResponse struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"createdAt"`
	AssignedUsers []UserResponse `json:"assignedUsers"`
}

// NewProjectResponse maps a project with preloaded memberships to its API view
func NewProjectResponse(project models.Project) ProjectResponse {
	members := make([]UserResponse, 0, len(project.UserProjects))
	for _, up := range project.UserProjects {
		members = append(members, NewUserResponse(up.User))
	}

	return ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		CreatedAt:     project.CreatedAt,
		AssignedUsers: members,
	}
}
