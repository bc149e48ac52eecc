package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global connection for a fresh in-memory database.
// The pool is capped at one connection so every query sees the same
// in-memory store.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Setenv("JWT_SECRET", "test-secret")
}

func createTestUser(t *testing.T, name, email string, role models.Role) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

func createTestProject(t *testing.T, name string) models.Project {
	t.Helper()

	project := models.Project{Name: name}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return project
}

func addProjectMember(t *testing.T, userID, projectID uint) {
	t.Helper()

	membership := models.UserProject{UserID: userID, ProjectID: projectID}
	if err := database.DB.Create(&membership).Error; err != nil {
		t.Fatalf("Failed to add user %d to project %d: %v", userID, projectID, err)
	}
}

// disabledEmail returns an email service that never attempts delivery
func disabledEmail() *EmailService {
	return &EmailService{enabled: false}
}

func newTestTicketService() *TicketService {
	return NewTicketService(NewNotificationService(disabledEmail()))
}
