package repositories

import (
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
	"gorm.io/gorm/clause"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct{}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// FindByUserID retrieves a user's notifications newest-first with the source
// ticket and project preloaded
func (r *NotificationRepository) FindByUserID(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	result := database.DB.
		Preload("Ticket").
		Preload("Ticket.CreatedByUser").
		Preload("Ticket.AssignedToUser").
		Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications)
	return notifications, result.Error
}

// CountUnread counts a user's unread notifications
func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	return count, result.Error
}

// FindByIDAndUser retrieves a notification only if it belongs to the user
func (r *NotificationRepository) FindByIDAndUser(id, userID uint) (models.Notification, error) {
	var notification models.Notification
	result := database.DB.
		Preload("Ticket").
		Preload("Project").
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification)
	return notification, result.Error
}

// Create inserts a single notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return database.DB.Create(notification).Error
}

// CreateBatch inserts a set of notifications at once
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return database.DB.Create(&notifications).Error
}

// Update modifies an existing notification without touching preloaded relations
func (r *NotificationRepository) Update(notification *models.Notification) error {
	return database.DB.Omit(clause.Associations).Save(notification).Error
}
