package repositories

import (
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
)

// UserProjectRepository handles database operations for project memberships
type UserProjectRepository struct{}

// NewUserProjectRepository creates a new membership repository instance
func NewUserProjectRepository() *UserProjectRepository {
	return &UserProjectRepository{}
}

// FindByProjectID retrieves all memberships of a project
func (r *UserProjectRepository) FindByProjectID(projectID uint) ([]models.UserProject, error) {
	var memberships []models.UserProject
	result := database.DB.Where("project_id = ?", projectID).Find(&memberships)
	return memberships, result.Error
}

// Exists checks whether a user is already assigned to a project
func (r *UserProjectRepository) Exists(userID, projectID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.UserProject{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new membership
func (r *UserProjectRepository) Create(membership *models.UserProject) error {
	return database.DB.Create(membership).Error
}

// DeleteByProjectAndUsers removes the given users from a project
func (r *UserProjectRepository) DeleteByProjectAndUsers(projectID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	return database.DB.
		Where("project_id = ? AND user_id IN ?", projectID, userIDs).
		Delete(&models.UserProject{}).Error
}
