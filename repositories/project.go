package repositories

import (
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects with their members, ordered by name
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Preload("UserProjects.User").
		Order("name").
		Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project with its members
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("UserProjects.User").
		First(&project, id)
	return project, result.Error
}

// ExistsByName checks whether another project already uses the name.
// excludeID is ignored when zero.
func (r *ProjectRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	db := database.DB.Model(&models.Project{}).Where("name = ?", name)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project *models.Project) error {
	return database.DB.Create(project).Error
}

// Update modifies an existing project without touching preloaded memberships
func (r *ProjectRepository) Update(project *models.Project) error {
	return database.DB.Omit(clause.Associations).Save(project).Error
}

// Delete removes a project and its memberships in one transaction
func (r *ProjectRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.UserProject{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
