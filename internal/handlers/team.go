package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/dto"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler() *TeamHandler {
	return &TeamHandler{
		teamService: services.NewTeamService(database.GetDB()),
	}
}

// CreateTeam creates a team in the caller's organization.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	type CreateTeamRequest struct {
		Name      string `json:"name" binding:"required"`
		LeadID    uint64 `json:"lead_id" binding:"required"`
		ManagerID uint64 `json:"manager_id" binding:"required"`
	}
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		OrganizationID: identity.OrganizationID,
		Name:           req.Name,
		LeadID:         req.LeadID,
		ManagerID:      req.ManagerID,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Team created", dto.ToTeamDTO(*team)))
}

// GetTeam returns a team with its plain members.
func (h *TeamHandler) GetTeam(c *gin.Context) {
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

	team, members, err := h.teamService.GetTeam(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Team fetched", dto.ToTeamDetailDTO(*team, members)))
}

// ListTeams lists the caller's organization teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	filter := utils.FiltersFromQuery(c, utils.EntityKindTeams)
	teams, total, err := h.teamService.ListTeams(identity.OrganizationID, filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Teams fetched", dto.ToTeamDTOs(teams), total))
}

// UpdateTeam updates a team. The service enforces manager-only access.
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
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

	type UpdateTeamRequest struct {
		Name      *string `json:"name"`
		LeadID    *uint64 `json:"lead_id"`
		ManagerID *uint64 `json:"manager_id"`
	}
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	team, err := h.teamService.UpdateTeam(id, identity.OrganizationID, identity.UserID, services.UpdateTeamInput{
		Name:      req.Name,
		LeadID:    req.LeadID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Team updated", dto.ToTeamDTO(*team)))
}

// DeleteTeam deletes a team. Pass cascade=true to remove members first;
// otherwise a team that still has members is a conflict.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
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

	cascade := c.Query("cascade") == "true"
	if err := h.teamService.DeleteTeam(id, identity.OrganizationID, identity.UserID, cascade); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Team deleted", nil))
}

// AddMember adds a plain member to a team.
func (h *TeamHandler) AddMember(c *gin.Context) {
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

	type AddMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	err = h.teamService.AddMember(id, req.UserID, identity.OrganizationID, identity.UserID, identity.IsAdmin())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Member added", nil))
}

// RemoveMember removes a plain member from a team.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
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
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	err = h.teamService.RemoveMember(id, userID, identity.OrganizationID, identity.UserID, identity.IsAdmin())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Member removed", nil))
}
