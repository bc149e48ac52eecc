package services

import (
	"bytes"
	"fmt"
	"html/template"
)

// Email bodies are fixed HTML templates rendered with html/template. Every
// template shares the same outer layout via the "layout" define.
const emailTemplateText = `
{{define "layout_top"}}
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: {{.Accent}}; border-bottom: 2px solid {{.Accent}}; padding-bottom: 10px;">{{.Heading}}</h2>
{{end}}

{{define "layout_bottom"}}
<hr style="margin: 30px 0; border: none; border-top: 1px solid #e0e0e0;">
<p style="font-size: 12px; color: #666; text-align: center;">This is an automated notification from the Support Ticketing System.</p>
</div>
</body>
</html>
{{end}}

{{define "ticket_created"}}
{{template "layout_top" .}}
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">{{.Ticket.Title}}</h3>
<p><strong>Priority:</strong> {{.Priority}}</p>
<p><strong>Created by:</strong> {{.Ticket.CreatedByUser.Name}} ({{.Ticket.CreatedByUser.Email}})</p>
{{if .ProjectName}}<p><strong>Project:</strong> {{.ProjectName}}</p>{{end}}
</div>
<div style="background-color: #fff; border: 1px solid #e0e0e0; padding: 20px; border-radius: 8px;">
<h4 style="margin-top: 0; color: #555;">Description:</h4>
<p style="white-space: pre-wrap;">{{.Ticket.Description}}</p>
</div>
<p><strong>Action Required:</strong> Please review and assign this ticket as needed.</p>
{{template "layout_bottom" .}}
{{end}}

{{define "ticket_status_changed"}}
{{template "layout_top" .}}
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">{{.Ticket.Title}}</h3>
<p>{{.OldStatus}} &rarr; {{.NewStatus}}</p>
{{if .AssigneeName}}<p><strong>Assigned to:</strong> {{.AssigneeName}}</p>{{end}}
{{if .ProjectName}}<p><strong>Project:</strong> {{.ProjectName}}</p>{{end}}
</div>
<p><strong>Status Update:</strong> Your ticket status has been changed from {{.OldStatus}} to {{.NewStatus}}.</p>
{{template "layout_bottom" .}}
{{end}}

{{define "ticket_assigned"}}
{{template "layout_top" .}}
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">{{.Ticket.Title}}</h3>
<p><strong>Priority:</strong> {{.Priority}}</p>
<p><strong>Status:</strong> {{.NewStatus}}</p>
<p><strong>Created by:</strong> {{.Ticket.CreatedByUser.Name}} ({{.Ticket.CreatedByUser.Email}})</p>
{{if .ProjectName}}<p><strong>Project:</strong> {{.ProjectName}}</p>{{end}}
</div>
<div style="background-color: #fff; border: 1px solid #e0e0e0; padding: 20px; border-radius: 8px;">
<h4 style="margin-top: 0; color: #555;">Description:</h4>
<p style="white-space: pre-wrap;">{{.Ticket.Description}}</p>
</div>
<p><strong>Action Required:</strong> This ticket has been assigned to you. Please review and take appropriate action.</p>
{{template "layout_bottom" .}}
{{end}}

{{define "added_to_project"}}
{{template "layout_top" .}}
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">{{.Project.Name}}</h3>
<p style="white-space: pre-wrap;">{{.Project.Description}}</p>
</div>
<p>You have been added to this project and will now receive notifications for its tickets.</p>
{{template "layout_bottom" .}}
{{end}}

{{define "new_account"}}
{{template "layout_top" .}}
<p>An account has been created for you on the Support Ticketing System.</p>
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<p><strong>Email:</strong> {{.Recipient.Email}}</p>
<p><strong>Temporary password:</strong> <code>{{.TemporaryPassword}}</code></p>
</div>
<p><strong>Action Required:</strong> Please log in and change your password.</p>
{{template "layout_bottom" .}}
{{end}}
`

// emailTemplateData feeds every email template; unused fields stay zero.
type emailTemplateData struct {
	Accent            string
	Heading           string
	Ticket            ticketEmailView
	Recipient         recipientEmailView
	Project           projectEmailView
	Priority          string
	OldStatus         string
	NewStatus         string
	AssigneeName      string
	ProjectName       string
	TemporaryPassword string
}

type ticketEmailView struct {
	Title         string
	Description   string
	CreatedByUser recipientEmailView
}

type recipientEmailView struct {
	Name  string
	Email string
}

type projectEmailView struct {
	Name        string
	Description string
}

type emailTemplates struct {
	tmpl *template.Template
}

func loadEmailTemplates() (*emailTemplates, error) {
	tmpl, err := template.New("email").Parse(emailTemplateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &emailTemplates{tmpl: tmpl}, nil
}

// Render renders the named template to an HTML string.
func (t *emailTemplates) Render(name string, data emailTemplateData) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}
