package dto

import (
	"time"

	"github.com/ticketdesk-simple/models"
)

// UserResponse is the public view of a user (no credential material)
type UserResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// CreateUserRequest is the admin-side user creation payload.
// When Password is empty a temporary password is generated and mailed.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role" binding:"required,oneof=applier receiver admin"`
}

// UpdateUserRequest is the admin-side user update payload
type UpdateUserRequest struct {
	Name  string      `json:"name" binding:"required"`
	Email string      `json:"email" binding:"required,email"`
	Role  models.Role `json:"role" binding:"required,oneof=applier receiver admin"`
}
