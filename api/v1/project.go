package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/dto"
)

// ListProjects returns all projects with their member lists
func ListProjects(c *gin.Context) {
	projects, err := projectService.ListProjects()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project with its member list
func GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := projectService.GetProject(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project and assigns the given members
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	project, err := projectService.CreateProject(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces project fields and reconciles its member set
func UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	project, err := projectService.UpdateProject(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project without tickets
func DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := projectService.DeleteProject(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignUsersToProject adds members to a project without removing existing ones
func AssignUsersToProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AssignUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	project, err := projectService.AssignUsers(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
