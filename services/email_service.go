package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/ticketdesk-simple/config"
	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
)

// EmailService renders and delivers HTML notification emails over SMTP.
// Email is a best-effort secondary channel: every failure is logged and
// swallowed so delivery can never fail the primary operation.
type EmailService struct {
	enabled   bool
	host      string
	port      int
	username  string
	password  string
	from      string
	templates *emailTemplates
}

// NewEmailService builds an email service from environment configuration.
// Delivery stays disabled unless EMAIL_NOTIFICATIONS=true.
func NewEmailService() *EmailService {
	templates, err := loadEmailTemplates()
	if err != nil {
		log.Printf("Failed to load email templates, disabling email: %v", err)
		return &EmailService{enabled: false}
	}

	return &EmailService{
		enabled:   config.GetEnvBool("EMAIL_NOTIFICATIONS", false),
		host:      config.GetEnv("SMTP_HOST", "localhost"),
		port:      config.GetEnvInt("SMTP_PORT", 587),
		username:  config.GetEnv("SMTP_USERNAME", ""),
		password:  config.GetEnv("SMTP_PASSWORD", ""),
		from:      config.GetEnv("SMTP_FROM", "noreply@ticketdesk.local"),
		templates: templates,
	}
}

// SendTicketCreatedEmail notifies a triager about a new ticket
func (s *EmailService) SendTicketCreatedEmail(ticket models.Ticket, recipient models.User) {
	data := emailTemplateData{
		Accent:      "#1976d2",
		Heading:     "New Support Ticket Created",
		Ticket:      ticketView(ticket),
		Priority:    ticket.Priority.Label(),
		ProjectName: projectName(ticket),
	}
	s.render("ticket_created", fmt.Sprintf("New Ticket Created: %s", ticket.Title), recipient.Email, data)
}

// SendTicketStatusChangedEmail notifies the creator about a status change
func (s *EmailService) SendTicketStatusChangedEmail(ticket models.Ticket, oldStatus models.TicketStatus, recipient models.User) {
	data := emailTemplateData{
		Accent:      "#388e3c",
		Heading:     "Ticket Status Updated",
		Ticket:      ticketView(ticket),
		OldStatus:   oldStatus.Label(),
		NewStatus:   ticket.Status.Label(),
		ProjectName: projectName(ticket),
	}
	if ticket.AssignedToUser != nil {
		data.AssigneeName = ticket.AssignedToUser.Name
	}
	s.render("ticket_status_changed", fmt.Sprintf("Ticket Status Updated: %s", ticket.Title), recipient.Email, data)
}

// SendTicketAssignedEmail notifies the new assignee
func (s *EmailService) SendTicketAssignedEmail(ticket models.Ticket, recipient models.User) {
	data := emailTemplateData{
		Accent:      "#f57c00",
		Heading:     "Ticket Assigned to You",
		Ticket:      ticketView(ticket),
		Priority:    ticket.Priority.Label(),
		NewStatus:   ticket.Status.Label(),
		ProjectName: projectName(ticket),
	}
	s.render("ticket_assigned", fmt.Sprintf("Ticket Assigned to You: %s", ticket.Title), recipient.Email, data)
}

// SendUserAddedToProjectEmail notifies a user about a new project membership
func (s *EmailService) SendUserAddedToProjectEmail(project models.Project, recipient models.User) {
	data := emailTemplateData{
		Accent:  "#9c27b0",
		Heading: "Added to Project",
		Project: projectEmailView{Name: project.Name, Description: project.Description},
	}
	s.render("added_to_project", fmt.Sprintf("Added to Project: %s", project.Name), recipient.Email, data)
}

// SendNewUserAccountEmail sends a freshly created account its temporary password
func (s *EmailService) SendNewUserAccountEmail(user models.User, temporaryPassword string) {
	data := emailTemplateData{
		Accent:            "#1976d2",
		Heading:           "Your Support Ticketing System Account",
		Recipient:         recipientEmailView{Name: user.Name, Email: user.Email},
		TemporaryPassword: temporaryPassword,
	}
	s.render("new_account", "Your Support Ticketing System Account", user.Email, data)
}

// render renders the template and hands the message to delivery. Delivery runs
// off the request path; failures are logged only.
func (s *EmailService) render(templateName, subject, to string, data emailTemplateData) {
	if !s.enabled {
		return
	}

	body, err := s.templates.Render(templateName, data)
	if err != nil {
		log.Printf("Failed to render %s email for %s: %v", templateName, to, err)
		return
	}

	go func() {
		if err := s.send(dto.EmailMessage{To: to, Subject: subject, Body: body}); err != nil {
			log.Printf("Failed to send %s email to %s: %v", templateName, to, err)
			return
		}
		log.Printf("Email sent successfully to %s", to)
	}()
}

// send delivers one message over SMTP
func (s *EmailService) send(msg dto.EmailMessage) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	var raw strings.Builder
	raw.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	raw.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	raw.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	raw.WriteString("\r\n")
	raw.WriteString(msg.Body)

	return smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(raw.String()))
}

func ticketView(ticket models.Ticket) ticketEmailView {
	return ticketEmailView{
		Title:       ticket.Title,
		Description: ticket.Description,
		CreatedByUser: recipientEmailView{
			Name:  ticket.CreatedByUser.Name,
			Email: ticket.CreatedByUser.Email,
		},
	}
}

func projectName(ticket models.Ticket) string {
	if ticket.Project != nil {
		return ticket.Project.Name
	}
	return ""
}
