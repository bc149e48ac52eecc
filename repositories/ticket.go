package repositories

import (
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct{}

// NewTicketRepository creates a new ticket repository instance
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// FindAll retrieves tickets newest-first with creator and assignee preloaded.
// When creatorID is non-nil the result is restricted to that creator.
func (r *TicketRepository) FindAll(creatorID *uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	db := database.DB.
		Preload("CreatedByUser").
		Preload("AssignedToUser").
		Preload("Project")
	if creatorID != nil {
		db = db.Where("created_by_user_id = ?", *creatorID)
	}
	result := db.Order("created_at DESC").Find(&tickets)
	return tickets, result.Error
}

// FindByID retrieves a ticket with creator and assignee preloaded
func (r *TicketRepository) FindByID(id uint) (models.Ticket, error) {
	var ticket models.Ticket
	result := database.DB.
		Preload("CreatedByUser").
		Preload("AssignedToUser").
		Preload("Project").
		First(&ticket, id)
	return ticket, result.Error
}

// FindByIDWithMembers retrieves a ticket with its project membership graph,
// which the notification fan-out needs to scope recipients.
func (r *TicketRepository) FindByIDWithMembers(id uint) (models.Ticket, error) {
	var ticket models.Ticket
	result := database.DB.
		Preload("CreatedByUser").
		Preload("AssignedToUser").
		Preload("Project").
		Preload("Project.UserProjects").
		First(&ticket, id)
	return ticket, result.Error
}

// Create inserts a new ticket into the database
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return database.DB.Create(ticket).Error
}

// Update modifies an existing ticket without touching preloaded relations
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return database.DB.Omit(clause.Associations).Save(ticket).Error
}

// Delete removes a ticket from the database
func (r *TicketRepository) Delete(id uint) error {
	return database.DB.Delete(&models.Ticket{}, id).Error
}

// CountByProjectID counts tickets attached to a project
func (r *TicketRepository) CountByProjectID(projectID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Ticket{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

// CountByCreator counts tickets created by a user
func (r *TicketRepository) CountByCreator(userID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Ticket{}).Where("created_by_user_id = ?", userID).Count(&count)
	return count, result.Error
}

// ClearAssignee nulls the assignee on every ticket assigned to a user
func (r *TicketRepository) ClearAssignee(userID uint) error {
	return database.DB.Model(&models.Ticket{}).
		Where("assigned_to_user_id = ?", userID).
		Update("assigned_to_user_id", gorm.Expr("NULL")).Error
}
