package services

import (
	"errors"
	"log"

	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
	"github.com/ticketdesk-simple/repositories"
	"gorm.io/gorm"
)

// TicketService handles business logic for tickets: CRUD with ownership and
// role based visibility, status transitions, and assignment.
type TicketService struct {
	ticketRepo    *repositories.TicketRepository
	userRepo      *repositories.UserRepository
	projectRepo   *repositories.ProjectRepository
	notifications *NotificationService
}

// NewTicketService creates a new ticket service instance
func NewTicketService(notifications *NotificationService) *TicketService {
	return &TicketService{
		ticketRepo:    repositories.NewTicketRepository(),
		userRepo:      repositories.NewUserRepository(),
		projectRepo:   repositories.NewProjectRepository(),
		notifications: notifications,
	}
}

// ListTickets retrieves tickets newest-first. Privileged callers (admin,
// receiver) see every ticket; appliers see only tickets they created.
func (s *TicketService) ListTickets(userID uint, privileged bool) ([]models.Ticket, error) {
	if privileged {
		return s.ticketRepo.FindAll(nil)
	}
	return s.ticketRepo.FindAll(&userID)
}

// GetTicket retrieves one ticket under the same visibility filter. A ticket
// the caller cannot see is reported as missing.
func (s *TicketService) GetTicket(id, userID uint, privileged bool) (models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, notFound("ticket not found")
		}
		return models.Ticket{}, err
	}

	if !privileged && ticket.CreatedByUserID != userID {
		return models.Ticket{}, notFound("ticket not found")
	}

	return ticket, nil
}

// CreateTicket creates a ticket for the given creator. The status is always
// open regardless of the request; priority defaults to low.
func (s *TicketService) CreateTicket(req dto.CreateTicketRequest, creatorID uint) (models.Ticket, error) {
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Ticket{}, conflict("project not found")
			}
			return models.Ticket{}, err
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityLow
	}

	ticket := models.Ticket{
		Title:           req.Title,
		Description:     req.Description,
		Priority:        priority,
		Status:          models.StatusOpen,
		CreatedByUserID: creatorID,
		ProjectID:       req.ProjectID,
	}

	if err := s.ticketRepo.Create(&ticket); err != nil {
		return models.Ticket{}, err
	}

	// Fan out in-app notifications. The ticket is already persisted, so a
	// fan-out failure is logged rather than surfaced.
	if err := s.notifications.NotifyTicketCreated(ticket.ID); err != nil {
		log.Printf("Failed to create ticket-created notifications for ticket %d: %v", ticket.ID, err)
	}

	return s.ticketRepo.FindByID(ticket.ID)
}

// UpdateTicket replaces title, description, priority and status. Only the
// creator or a privileged caller may update; a status change notifies the
// creator.
func (s *TicketService) UpdateTicket(id uint, req dto.UpdateTicketRequest, userID uint, privileged bool) (models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, notFound("ticket not found")
		}
		return models.Ticket{}, err
	}

	if !privileged && ticket.CreatedByUserID != userID {
		return models.Ticket{}, forbidden("not authorized to update this ticket")
	}

	oldStatus := ticket.Status

	ticket.Title = req.Title
	ticket.Description = req.Description
	ticket.Priority = req.Priority
	ticket.Status = req.Status

	if err := s.ticketRepo.Update(&ticket); err != nil {
		return models.Ticket{}, err
	}

	if oldStatus != ticket.Status {
		if err := s.notifications.NotifyStatusChanged(ticket.ID, oldStatus); err != nil {
			log.Printf("Failed to create status-changed notification for ticket %d: %v", ticket.ID, err)
		}
	}

	return s.ticketRepo.FindByID(ticket.ID)
}

// DeleteTicket removes a ticket under the same ownership rule as update
func (s *TicketService) DeleteTicket(id, userID uint, privileged bool) error {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("ticket not found")
		}
		return err
	}

	if !privileged && ticket.CreatedByUserID != userID {
		return forbidden("not authorized to delete this ticket")
	}

	return s.ticketRepo.Delete(id)
}

// AssignTicket sets the ticket assignee. The target user must exist. The new
// assignee is notified only when the assignment actually changed.
func (s *TicketService) AssignTicket(id, targetUserID uint) (models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, notFound("ticket not found")
		}
		return models.Ticket{}, err
	}

	if _, err := s.userRepo.FindByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, conflict("user not found")
		}
		return models.Ticket{}, err
	}

	oldAssigneeID := ticket.AssignedToUserID
	ticket.AssignedToUserID = &targetUserID
	ticket.AssignedToUser = nil

	if err := s.ticketRepo.Update(&ticket); err != nil {
		return models.Ticket{}, err
	}

	if err := s.notifications.NotifyAssigned(ticket.ID, oldAssigneeID); err != nil {
		log.Printf("Failed to create assignment notification for ticket %d: %v", ticket.ID, err)
	}

	return s.ticketRepo.FindByID(ticket.ID)
}
