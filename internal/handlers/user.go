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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(database.GetDB()),
	}
}

// CreateUser adds a user to the caller's organization. Admin only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("Only an admin can create users"))
		return
	}

	type CreateUserRequest struct {
		FirstName         string  `json:"first_name" binding:"required"`
		LastName          string  `json:"last_name" binding:"required"`
		Email             string  `json:"email" binding:"required,email"`
		Username          string  `json:"username" binding:"required"`
		Password          string  `json:"password" binding:"required"`
		ProfilePictureURL *string `json:"profile_picture_url"`
	}
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		OrganizationID:    identity.OrganizationID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Username:          req.Username,
		Password:          req.Password,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("User created", dto.ToUserDTO(*user)))
}

// GetUser returns a user of the caller's organization.
func (h *UserHandler) GetUser(c *gin.Context) {
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

	user, err := h.userService.GetUser(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("User fetched", dto.ToUserDTO(*user)))
}

// ListUsers lists the caller's organization members.
func (h *UserHandler) ListUsers(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	filter := utils.FiltersFromQuery(c, utils.EntityKindUsers)
	users, total, err := h.userService.ListUsers(identity.OrganizationID, filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Users fetched", dto.ToUserDTOs(users), total))
}

// UpdateUser updates a user's profile. Self or admin.
func (h *UserHandler) UpdateUser(c *gin.Context) {
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
	if id != identity.UserID && !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("You can only update your own profile"))
		return
	}

	type UpdateUserRequest struct {
		FirstName         *string `json:"first_name"`
		LastName          *string `json:"last_name"`
		ProfilePictureURL *string `json:"profile_picture_url"`
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	user, err := h.userService.UpdateUser(id, identity.OrganizationID, services.UpdateUserInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("User updated", dto.ToUserDTO(*user)))
}

// DeleteUser soft-deletes a user of the caller's organization. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("Only an admin can delete users"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.userService.DeleteUser(id, identity.OrganizationID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("User deleted", nil))
}
