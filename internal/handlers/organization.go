package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/dto"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type OrganizationHandler struct {
	organizationService *services.OrganizationService
}

func NewOrganizationHandler() *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: services.NewOrganizationService(database.GetDB()),
	}
}

// GetOrganization returns the caller's own organization.
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	org, err := h.organizationService.GetOrganization(identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Organization fetched", dto.ToOrganizationDTO(*org)))
}

// ListOrganizations lists every organization. Super admin only.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if identity.Role != models.RoleSuperAdmin {
		apperrors.Respond(c, apperrors.Unauthorized("Only a super admin can list organizations"))
		return
	}

	filter := utils.FiltersFromQuery(c, "")
	orgs, total, err := h.organizationService.ListOrganizations(filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	dtos := make([]dto.OrganizationDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = dto.ToOrganizationDTO(org)
	}
	c.JSON(http.StatusOK, utils.OKList("Organizations fetched", dtos, total))
}

// CreateOrganization creates an organization. Super admin only; regular
// tenants come in through signup.
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if identity.Role != models.RoleSuperAdmin {
		apperrors.Respond(c, apperrors.Unauthorized("Only a super admin can create organizations"))
		return
	}

	type CreateOrganizationRequest struct {
		Name string `json:"name" binding:"required"`
	}
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	org, err := h.organizationService.CreateOrganization(req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Organization created", dto.ToOrganizationDTO(*org)))
}

// UpdateOrganization renames the caller's organization. Admin only.
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("Only an admin can update the organization"))
		return
	}

	type UpdateOrganizationRequest struct {
		Name string `json:"name" binding:"required"`
	}
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	org, err := h.organizationService.UpdateOrganization(identity.OrganizationID, req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Organization updated", dto.ToOrganizationDTO(*org)))
}

// DeleteOrganization soft-deletes an organization. Super admin only.
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if identity.Role != models.RoleSuperAdmin {
		apperrors.Respond(c, apperrors.Unauthorized("Only a super admin can delete organizations"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.organizationService.DeleteOrganization(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Organization deleted", nil))
}
