package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/ticketdesk-simple/database"
	"github.com/ticketdesk-simple/dto"
	"github.com/ticketdesk-simple/models"
)

func memberIDs(resp dto.ProjectResponse) []uint {
	ids := make([]uint, 0, len(resp.AssignedUsers))
	for _, u := range resp.AssignedUsers {
		ids = append(ids, u.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestCreateProjectWithMembers(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com", models.RoleReceiver)
	bob := createTestUser(t, "Bob", "bob@example.com", models.RoleReceiver)
	svc := NewProjectService(disabledEmail())

	resp, err := svc.CreateProject(dto.CreateProjectRequest{
		Name:    "Web",
		UserIDs: []uint{alice.ID, bob.ID},
	})
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	got := memberIDs(resp)
	if len(got) != 2 || got[0] != alice.ID || got[1] != bob.ID {
		t.Errorf("Expected members [%d %d], got %v", alice.ID, bob.ID, got)
	}
}

func TestCreateProjectDuplicateName(t *testing.T) {
	setupTestDB(t)
	createTestProject(t, "Web")
	svc := NewProjectService(disabledEmail())

	_, err := svc.CreateProject(dto.CreateProjectRequest{Name: "Web"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict for duplicate project name, got %v", err)
	}
}

func TestUpdateProjectReconcilesMembers(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com", models.RoleReceiver)
	bob := createTestUser(t, "Bob", "bob@example.com", models.RoleReceiver)
	carol := createTestUser(t, "Carol", "carol@example.com", models.RoleReceiver)
	svc := NewProjectService(disabledEmail())

	created, err := svc.CreateProject(dto.CreateProjectRequest{
		Name:    "Web",
		UserIDs: []uint{alice.ID, bob.ID},
	})
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	// Bob leaves, Carol joins
	resp, err := svc.UpdateProject(created.ID, dto.UpdateProjectRequest{
		Name:    "Web Platform",
		UserIDs: []uint{alice.ID, carol.ID},
	})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	if resp.Name != "Web Platform" {
		t.Errorf("Expected renamed project, got %q", resp.Name)
	}
	got := memberIDs(resp)
	if len(got) != 2 || got[0] != alice.ID || got[1] != carol.ID {
		t.Errorf("Expected members [%d %d], got %v", alice.ID, carol.ID, got)
	}
}

func TestUpdateProjectNameCollision(t *testing.T) {
	setupTestDB(t)
	createTestProject(t, "Web")
	mobile := createTestProject(t, "Mobile")
	svc := NewProjectService(disabledEmail())

	if _, err := svc.UpdateProject(mobile.ID, dto.UpdateProjectRequest{Name: "Web"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict for name collision, got %v", err)
	}

	// Keeping its own name is not a collision
	if _, err := svc.UpdateProject(mobile.ID, dto.UpdateProjectRequest{Name: "Mobile"}); err != nil {
		t.Fatalf("UpdateProject with unchanged name failed: %v", err)
	}
}

func TestAssignUsersIsAdditiveAndIdempotent(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com", models.RoleReceiver)
	bob := createTestUser(t, "Bob", "bob@example.com", models.RoleReceiver)
	project := createTestProject(t, "Web")
	addProjectMember(t, alice.ID, project.ID)
	svc := NewProjectService(disabledEmail())

	// Already-assigned and unknown ids are skipped silently
	resp, err := svc.AssignUsers(project.ID, dto.AssignUsersRequest{
		UserIDs: []uint{alice.ID, bob.ID, 999},
	})
	if err != nil {
		t.Fatalf("AssignUsers failed: %v", err)
	}

	got := memberIDs(resp)
	if len(got) != 2 || got[0] != alice.ID || got[1] != bob.ID {
		t.Errorf("Expected members [%d %d], got %v", alice.ID, bob.ID, got)
	}

	var count int64
	database.DB.Model(&models.UserProject{}).Where("project_id = ?", project.ID).Count(&count)
	if count != 2 {
		t.Errorf("Expected 2 membership rows, got %d", count)
	}
}

func TestDeleteProject(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com", models.RoleReceiver)
	project := createTestProject(t, "Web")
	addProjectMember(t, alice.ID, project.ID)
	svc := NewProjectService(disabledEmail())

	if err := svc.DeleteProject(project.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	var memberships int64
	database.DB.Model(&models.UserProject{}).Where("project_id = ?", project.ID).Count(&memberships)
	if memberships != 0 {
		t.Errorf("Expected memberships removed with the project, %d remain", memberships)
	}

	if err := svc.DeleteProject(project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a deleted project, got %v", err)
	}
}

func TestDeleteProjectWithTickets(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com", models.RoleApplier)
	project := createTestProject(t, "Web")
	ticketSvc := newTestTicketService()
	svc := NewProjectService(disabledEmail())

	if _, err := ticketSvc.CreateTicket(dto.CreateTicketRequest{
		Title:     "Broken deploy",
		ProjectID: &project.ID,
	}, alice.ID); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if err := svc.DeleteProject(project.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict when deleting a project with tickets, got %v", err)
	}
}
