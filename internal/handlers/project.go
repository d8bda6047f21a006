package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(database.GetDB()),
	}
}

// CreateProject creates a project in the caller's organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	type CreateProjectRequest struct {
		Name        string     `json:"name" binding:"required"`
		Description *string    `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		OrganizationID: identity.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Project created", project))
}

// GetProject returns a project of the caller's organization.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	project, err := h.projectService.GetProject(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Project fetched", project))
}

// ListProjects lists the caller's organization projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	filter := utils.FiltersFromQuery(c, utils.EntityKindProjects)
	projects, total, err := h.projectService.ListProjects(identity.OrganizationID, filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Projects fetched", projects, total))
}

// UpdateProject updates a project of the caller's organization.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	type UpdateProjectRequest struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	project, err := h.projectService.UpdateProject(id, identity.OrganizationID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Project updated", project))
}

// DeleteProject soft-deletes a project of the caller's organization.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.projectService.DeleteProject(id, identity.OrganizationID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Project deleted", nil))
}
