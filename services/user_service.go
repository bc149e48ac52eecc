package services

import (
	"errors"

	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
	"github.com/ticketdesk-simple/repositories"
	"github.com/ticketdesk-simple/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles admin-side user management
type UserService struct {
	userRepo   *repositories.UserRepository
	ticketRepo *repositories.TicketRepository
	email      *EmailService
}

// NewUserService creates a new user service instance
func NewUserService(email *EmailService) *UserService {
	return &UserService{
		userRepo:   repositories.NewUserRepository(),
		ticketRepo: repositories.NewTicketRepository(),
		email:      email,
	}
}

// ListUsers retrieves all users ordered by name
func (s *UserService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uint) (dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, notFound("user not found")
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// CreateUser creates a user with an admin-chosen role. When the request
// carries no password a temporary one is generated and mailed to the user.
func (s *UserService) CreateUser(req dto.CreateUserRequest) (dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email, 0)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if exists {
		return dto.UserResponse{}, conflict("user with this email already exists")
	}

	password := req.Password
	temporary := password == ""
	if temporary {
		password = utils.GenerateSecurePassword(12)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return dto.UserResponse{}, err
	}

	if temporary {
		s.email.SendNewUserAccountEmail(user, password)
	}

	return dto.NewUserResponse(user), nil
}

// UpdateUser changes name, email and role
func (s *UserService) UpdateUser(id uint, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, notFound("user not found")
		}
		return dto.UserResponse{}, err
	}

	taken, err := s.userRepo.ExistsByEmail(req.Email, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if taken {
		return dto.UserResponse{}, conflict("user with this email already exists")
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role

	if err := s.userRepo.Update(&user); err != nil {
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

// DeleteUser removes a user. A user who created tickets cannot be deleted;
// tickets merely assigned to the user get their assignee cleared.
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("user not found")
		}
		return err
	}

	created, err := s.ticketRepo.CountByCreator(id)
	if err != nil {
		return err
	}
	if created > 0 {
		return conflict("cannot delete user who has created tickets")
	}

	if err := s.ticketRepo.ClearAssignee(id); err != nil {
		return err
	}

	return s.userRepo.Delete(id)
}
