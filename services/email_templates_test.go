package services

import (
	"strings"
	"testing"
)

func TestEmailTemplatesRender(t *testing.T) {
	templates, err := loadEmailTemplates()
	if err != nil {
		t.Fatalf("Failed to load email templates: %v", err)
	}

	data := emailTemplateData{
		Accent:  "#1976d2",
		Heading: "Heading",
		Ticket: ticketEmailView{
			Title:       "Broken login",
			Description: "Cannot sign in",
			CreatedByUser: recipientEmailView{
				Name:  "Alice",
				Email: "alice@example.com",
			},
		},
		Recipient:         recipientEmailView{Name: "Rita", Email: "rita@example.com"},
		Project:           projectEmailView{Name: "Web", Description: "Web platform"},
		Priority:          "High",
		OldStatus:         "Open",
		NewStatus:         "Resolved",
		ProjectName:       "Web",
		TemporaryPassword: "temp-password",
	}

	tests := []struct {
		template string
		contains string
	}{
		{"ticket_created", "Broken login"},
		{"ticket_status_changed", "Resolved"},
		{"ticket_assigned", "alice@example.com"},
		{"added_to_project", "Web platform"},
		{"new_account", "temp-password"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			body, err := templates.Render(tt.template, data)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("Expected rendered body to contain %q", tt.contains)
			}
			if !strings.Contains(body, "</html>") {
				t.Error("Expected rendered body to close the shared layout")
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	templates, err := loadEmailTemplates()
	if err != nil {
		t.Fatalf("Failed to load email templates: %v", err)
	}

	if _, err := templates.Render("no_such_template", emailTemplateData{}); err == nil {
		t.Error("Expected an error for an unknown template name")
	}
}
