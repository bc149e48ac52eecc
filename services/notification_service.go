package services

import (
	"errors"
	"fmt"

	"github.com/ticketdesk-simple/models"
	"github.com/ticketdesk-simple/repositories"
	"gorm.io/gorm"
)

// NotificationService materializes in-app notifications on ticket lifecycle
// events and answers read/unread queries.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	ticketRepo       *repositories.TicketRepository
	userRepo         *repositories.UserRepository
	email            *EmailService
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(email *EmailService) *NotificationService {
	return &NotificationService{
		notificationRepo: repositories.NewNotificationRepository(),
		ticketRepo:       repositories.NewTicketRepository(),
		userRepo:         repositories.NewUserRepository(),
		email:            email,
	}
}

// ListForUser retrieves a user's notifications newest-first
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.FindByUserID(userID)
}

// UnreadCount counts a user's unread notifications
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// MarkAsRead flags a notification as read. Notifications belonging to someone
// else look exactly like missing ones.
func (s *NotificationService) MarkAsRead(id, userID uint) (models.Notification, error) {
	notification, err := s.notificationRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, notFound("notification not found")
		}
		return models.Notification{}, err
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(&notification); err != nil {
		return models.Notification{}, err
	}

	return notification, nil
}

// NotifyTicketCreated fans a ticket-created notification out to every receiver
// and admin except the creator. When the ticket belongs to a project the
// receiver set narrows to that project's members; admins are always included.
func (s *NotificationService) NotifyTicketCreated(ticketID uint) error {
	ticket, err := s.ticketRepo.FindByIDWithMembers(ticketID)
	if err != nil {
		return err
	}

	recipients, err := s.userRepo.FindByRoles(models.RoleReceiver, models.RoleAdmin)
	if err != nil {
		return err
	}

	var memberIDs map[uint]bool
	if ticket.Project != nil {
		memberIDs = make(map[uint]bool, len(ticket.Project.UserProjects))
		for _, up := range ticket.Project.UserProjects {
			memberIDs[up.UserID] = true
		}
	}

	summary := summarize(ticket.Description)

	var message string
	if ticket.Project != nil {
		message = fmt.Sprintf("New %s priority ticket created in project '%s': %s",
			ticket.Priority.Label(), ticket.Project.Name, ticket.Title)
	} else {
		message = fmt.Sprintf("New %s priority ticket created: %s",
			ticket.Priority.Label(), ticket.Title)
	}

	var notifications []models.Notification
	for _, user := range recipients {
		if user.ID == ticket.CreatedByUserID {
			continue
		}
		if memberIDs != nil && !memberIDs[user.ID] && user.Role != models.RoleAdmin {
			continue
		}

		notifications = append(notifications, models.Notification{
			UserID:             user.ID,
			TicketID:           ticket.ID,
			ProjectID:          ticket.ProjectID,
			Type:               models.NotificationTicketCreated,
			Message:            message,
			TicketTitle:        ticket.Title,
			ProjectName:        projectName(ticket),
			CreatorName:        ticket.CreatedByUser.Name,
			DescriptionSummary: summary,
		})
	}

	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return err
	}

	for _, user := range recipients {
		if user.ID == ticket.CreatedByUserID {
			continue
		}
		if memberIDs != nil && !memberIDs[user.ID] && user.Role != models.RoleAdmin {
			continue
		}
		s.email.SendTicketCreatedEmail(ticket, user)
	}

	return nil
}

// NotifyStatusChanged notifies the ticket creator about a status transition,
// carrying both the old and the new status label.
func (s *NotificationService) NotifyStatusChanged(ticketID uint, oldStatus models.TicketStatus) error {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Your ticket '%s' status changed from %s to %s",
		ticket.Title, oldStatus.Label(), ticket.Status.Label())
	if ticket.AssignedToUser != nil {
		message += fmt.Sprintf(" by %s", ticket.AssignedToUser.Name)
	}

	notification := models.Notification{
		UserID:      ticket.CreatedByUserID,
		TicketID:    ticket.ID,
		ProjectID:   ticket.ProjectID,
		Type:        models.NotificationTicketStatusChanged,
		Message:     message,
		TicketTitle: ticket.Title,
		ProjectName: projectName(ticket),
	}

	if err := s.notificationRepo.Create(&notification); err != nil {
		return err
	}

	s.email.SendTicketStatusChangedEmail(ticket, oldStatus, ticket.CreatedByUser)
	return nil
}

// NotifyAssigned notifies the newly assigned user, but only when the assignee
// actually changed. Reassigning the same person is silent.
func (s *NotificationService) NotifyAssigned(ticketID uint, oldAssigneeID *uint) error {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		return err
	}

	if ticket.AssignedToUserID == nil {
		return nil
	}
	if oldAssigneeID != nil && *oldAssigneeID == *ticket.AssignedToUserID {
		return nil
	}

	var message string
	if ticket.Project != nil {
		message = fmt.Sprintf("You have been assigned to ticket '%s' in project '%s'",
			ticket.Title, ticket.Project.Name)
	} else {
		message = fmt.Sprintf("You have been assigned to ticket '%s'", ticket.Title)
	}

	notification := models.Notification{
		UserID:      *ticket.AssignedToUserID,
		TicketID:    ticket.ID,
		ProjectID:   ticket.ProjectID,
		Type:        models.NotificationTicketAssigned,
		Message:     message,
		TicketTitle: ticket.Title,
		ProjectName: projectName(ticket),
		CreatorName: ticket.CreatedByUser.Name,
	}

	if err := s.notificationRepo.Create(&notification); err != nil {
		return err
	}

	if ticket.AssignedToUser != nil {
		s.email.SendTicketAssignedEmail(ticket, *ticket.AssignedToUser)
	}
	return nil
}

// summarize trims a description to a 100-rune excerpt for display fields
func summarize(description string) string {
	runes := []rune(description)
	if len(runes) <= 100 {
		return description
	}
	return string(runes[:100]) + "..."
}
