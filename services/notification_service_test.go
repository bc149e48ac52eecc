package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
)

func notificationsFor(t *testing.T, userID uint) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	if err := database.DB.Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
		t.Fatalf("Failed to load notifications for user %d: %v", userID, err)
	}
	return notifications
}

func TestTicketCreatedFanOut(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	receiver := createTestUser(t, "Rita", "rita@example.com", models.RoleReceiver)
	admin := createTestUser(t, "Ada", "ada@example.com", models.RoleAdmin)
	other := createTestUser(t, "Bob", "bob@example.com", models.RoleApplier)
	svc := newTestTicketService()

	if _, err := svc.CreateTicket(dto.CreateTicketRequest{
		Title:    "Printer on fire",
		Priority: models.PriorityHigh,
	}, applier.ID); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	tests := []struct {
		name   string
		userID uint
		want   int
	}{
		{"receiver is notified", receiver.ID, 1},
		{"admin is notified", admin.ID, 1},
		{"creator is not notified", applier.ID, 0},
		{"other appliers are not notified", other.ID, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := notificationsFor(t, tt.userID)
			if len(got) != tt.want {
				t.Fatalf("Expected %d notifications, got %d", tt.want, len(got))
			}
			if tt.want == 1 {
				n := got[0]
				if n.Type != models.NotificationTicketCreated {
					t.Errorf("Expected type ticket_created, got %s", n.Type)
				}
				if !strings.Contains(n.Message, "High priority") {
					t.Errorf("Expected priority label in message, got %q", n.Message)
				}
			}
		})
	}
}

func TestTicketCreatedFanOutNarrowsToProjectMembers(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	member := createTestUser(t, "Rita", "rita@example.com", models.RoleReceiver)
	outsider := createTestUser(t, "Rob", "rob@example.com", models.RoleReceiver)
	admin := createTestUser(t, "Ada", "ada@example.com", models.RoleAdmin)
	project := createTestProject(t, "Web")
	addProjectMember(t, member.ID, project.ID)
	svc := newTestTicketService()

	if _, err := svc.CreateTicket(dto.CreateTicketRequest{
		Title:     "Broken deploy",
		ProjectID: &project.ID,
	}, applier.ID); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if got := notificationsFor(t, member.ID); len(got) != 1 {
		t.Errorf("Expected the member receiver to get 1 notification, got %d", len(got))
	}
	if got := notificationsFor(t, outsider.ID); len(got) != 0 {
		t.Errorf("Expected the non-member receiver to get no notifications, got %d", len(got))
	}
	// Admins bypass the project narrowing
	got := notificationsFor(t, admin.ID)
	if len(got) != 1 {
		t.Fatalf("Expected the admin to get 1 notification, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "in project 'Web'") {
		t.Errorf("Expected project name in message, got %q", got[0].Message)
	}
}

func TestStatusChangeNotifiesCreator(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	receiver := createTestUser(t, "Rita", "rita@example.com", models.RoleReceiver)
	svc := newTestTicketService()

	ticket, err := svc.CreateTicket(dto.CreateTicketRequest{Title: "Broken login"}, applier.ID)
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if _, err := svc.UpdateTicket(ticket.ID, dto.UpdateTicketRequest{
		Title:    ticket.Title,
		Priority: models.PriorityLow,
		Status:   models.StatusResolved,
	}, receiver.ID, true); err != nil {
		t.Fatalf("UpdateTicket failed: %v", err)
	}

	got := notificationsFor(t, applier.ID)
	if len(got) != 1 {
		t.Fatalf("Expected exactly 1 status notification for the creator, got %d", len(got))
	}
	if got[0].Type != models.NotificationTicketStatusChanged {
		t.Errorf("Expected type ticket_status_changed, got %s", got[0].Type)
	}
	if !strings.Contains(got[0].Message, "from Open to Resolved") {
		t.Errorf("Expected old and new status labels in message, got %q", got[0].Message)
	}
}

func TestUpdateWithoutStatusChangeIsSilent(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	svc := newTestTicketService()

	ticket, err := svc.CreateTicket(dto.CreateTicketRequest{Title: "Broken login"}, applier.ID)
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if _, err := svc.UpdateTicket(ticket.ID, dto.UpdateTicketRequest{
		Title:    "Broken login page",
		Priority: models.PriorityMedium,
		Status:   models.StatusOpen,
	}, applier.ID, false); err != nil {
		t.Fatalf("UpdateTicket failed: %v", err)
	}

	if got := notificationsFor(t, applier.ID); len(got) != 0 {
		t.Errorf("Expected no notification when status is unchanged, got %d", len(got))
	}
}

func TestReassignSameUserIsSilent(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	receiver := createTestUser(t, "Rita", "rita@example.com", models.RoleReceiver)
	svc := newTestTicketService()

	ticket, err := svc.CreateTicket(dto.CreateTicketRequest{Title: "Broken login"}, applier.ID)
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if _, err := svc.AssignTicket(ticket.ID, receiver.ID); err != nil {
		t.Fatalf("First AssignTicket failed: %v", err)
	}
	if _, err := svc.AssignTicket(ticket.ID, receiver.ID); err != nil {
		t.Fatalf("Second AssignTicket failed: %v", err)
	}

	var got []models.Notification
	database.DB.Where("user_id = ? AND type = ?", receiver.ID, models.NotificationTicketAssigned).Find(&got)
	if len(got) != 1 {
		t.Fatalf("Expected exactly 1 assignment notification, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "Broken login") {
		t.Errorf("Expected ticket title in message, got %q", got[0].Message)
	}
}

func TestMarkAsReadAndUnreadCount(t *testing.T) {
	setupTestDB(t)
	applier := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	receiver := createTestUser(t, "Rita", "rita@example.com", models.RoleReceiver)
	ticketSvc := newTestTicketService()
	svc := NewNotificationService(disabledEmail())

	if _, err := ticketSvc.CreateTicket(dto.CreateTicketRequest{Title: "First"}, applier.ID); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}
	if _, err := ticketSvc.CreateTicket(dto.CreateTicketRequest{Title: "Second"}, applier.ID); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	count, err := svc.UnreadCount(receiver.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 unread notifications, got %d", count)
	}

	notifications, err := svc.ListForUser(receiver.ID)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(notifications))
	}

	// Another user cannot mark someone else's notification
	if _, err := svc.MarkAsRead(notifications[0].ID, applier.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound when marking another user's notification, got %v", err)
	}

	marked, err := svc.MarkAsRead(notifications[0].ID, receiver.ID)
	if err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if !marked.IsRead {
		t.Error("Expected notification to be flagged as read")
	}

	count, err = svc.UnreadCount(receiver.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 unread notification after marking, got %d", count)
	}
}

func TestSummarize(t *testing.T) {
	short := "a short description"
	if got := summarize(short); got != short {
		t.Errorf("Expected short descriptions unchanged, got %q", got)
	}

	long := strings.Repeat("x", 150)
	got := summarize(long)
	if len([]rune(got)) != 103 {
		t.Errorf("Expected 100 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected summary to end with ellipsis, got %q", got)
	}
}
