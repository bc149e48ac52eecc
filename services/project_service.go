package services

import (
	"errors"
	"time"

	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
	"github.com/ticketdesk-simple/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and their memberships
type ProjectService struct {
	projectRepo     *repositories.ProjectRepository
	userRepo        *repositories.UserRepository
	userProjectRepo *repositories.UserProjectRepository
	ticketRepo      *repositories.TicketRepository
	email           *EmailService
}

// NewProjectService creates a new project service instance
func NewProjectService(email *EmailService) *ProjectService {
	return &ProjectService{
		projectRepo:     repositories.NewProjectRepository(),
		userRepo:        repositories.NewUserRepository(),
		userProjectRepo: repositories.NewUserProjectRepository(),
		ticketRepo:      repositories.NewTicketRepository(),
		email:           email,
	}
}

// ListProjects retrieves all projects with their member lists
func (s *ProjectService) ListProjects() ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, dto.NewProjectResponse(project))
	}
	return responses, nil
}

// GetProject retrieves one project with its member list
func (s *ProjectService) GetProject(id uint) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectResponse{}, notFound("project not found")
		}
		return dto.ProjectResponse{}, err
	}
	return dto.NewProjectResponse(project), nil
}

// CreateProject creates a project and assigns the given members. Member
// assignment is idempotent: already-assigned pairs and unknown user ids are
// skipped silently.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	taken, err := s.projectRepo.ExistsByName(req.Name, 0)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	if taken {
		return dto.ProjectResponse{}, conflict("project with this name already exists")
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		return dto.ProjectResponse{}, err
	}

	if err := s.assignUsers(project, req.UserIDs); err != nil {
		return dto.ProjectResponse{}, err
	}

	return s.GetProject(project.ID)
}

// UpdateProject replaces name, description and reconciles membership to
// exactly the given set: absent members are removed, new ones added.
func (s *ProjectService) UpdateProject(id uint, req dto.UpdateProjectRequest) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectResponse{}, notFound("project not found")
		}
		return dto.ProjectResponse{}, err
	}

	taken, err := s.projectRepo.ExistsByName(req.Name, id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	if taken {
		return dto.ProjectResponse{}, conflict("project with this name already exists")
	}

	project.Name = req.Name
	project.Description = req.Description
	if err := s.projectRepo.Update(&project); err != nil {
		return dto.ProjectResponse{}, err
	}

	// Remove members not in the new set
	wanted := make(map[uint]bool, len(req.UserIDs))
	for _, userID := range req.UserIDs {
		wanted[userID] = true
	}

	var toRemove []uint
	for _, up := range project.UserProjects {
		if !wanted[up.UserID] {
			toRemove = append(toRemove, up.UserID)
		}
	}
	if err := s.userProjectRepo.DeleteByProjectAndUsers(id, toRemove); err != nil {
		return dto.ProjectResponse{}, err
	}

	if err := s.assignUsers(project, req.UserIDs); err != nil {
		return dto.ProjectResponse{}, err
	}

	return s.GetProject(id)
}

// DeleteProject removes a project and its memberships. Projects that still
// have tickets cannot be deleted.
func (s *ProjectService) DeleteProject(id uint) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("project not found")
		}
		return err
	}

	ticketCount, err := s.ticketRepo.CountByProjectID(id)
	if err != nil {
		return err
	}
	if ticketCount > 0 {
		return conflict("cannot delete project that has tickets")
	}

	return s.projectRepo.Delete(id)
}

// AssignUsers adds the given users to a project without removing existing
// members.
func (s *ProjectService) AssignUsers(id uint, req dto.AssignUsersRequest) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectResponse{}, notFound("project not found")
		}
		return dto.ProjectResponse{}, err
	}

	if err := s.assignUsers(project, req.UserIDs); err != nil {
		return dto.ProjectResponse{}, err
	}

	return s.GetProject(id)
}

// assignUsers links users to a project, skipping unknown user ids and pairs
// that already exist. Newly added members get a best-effort email.
func (s *ProjectService) assignUsers(project models.Project, userIDs []uint) error {
	for _, userID := range userIDs {
		user, err := s.userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		exists, err := s.userProjectRepo.Exists(userID, project.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		membership := models.UserProject{
			UserID:     userID,
			ProjectID:  project.ID,
			AssignedAt: time.Now(),
		}
		if err := s.userProjectRepo.Create(&membership); err != nil {
			return err
		}

		s.email.SendUserAddedToProjectEmail(project, user)
	}
	return nil
}
