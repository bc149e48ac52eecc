package repositories

import (
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAll retrieves all users ordered by name
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("name").Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// ExistsByEmail checks whether another user already uses the email.
// excludeID is ignored when zero.
func (r *UserRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	db := database.DB.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// FindByRoles retrieves all users holding any of the given roles
func (r *UserRepository) FindByRoles(roles ...models.Role) ([]models.User, error) {
	var users []models.User
	result := database.DB.Where("role IN ?", roles).Find(&users)
	return users, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Save(user).Error
}

// Delete removes a user from the database
func (r *UserRepository) Delete(id uint) error {
	return database.DB.Delete(&models.User{}, id).Error
}
