package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/dto"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(mailer *services.MailerService) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(database.GetDB(), mailer),
	}
}

// Signup registers a new organization and its first admin user.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		OrganizationName string `json:"organization_name" binding:"required"`
		FirstName        string `json:"first_name" binding:"required"`
		LastName         string `json:"last_name" binding:"required"`
		Email            string `json:"email" binding:"required,email"`
		Username         string `json:"username" binding:"required"`
		Password         string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		OrganizationName: req.OrganizationName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Username:         req.Username,
		Password:         req.Password,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apperrors.Respond(c, apperrors.Store("Failed to save session", err))
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Signup successful", dto.ToUserDTO(*user)))
}

// Login authenticates by email or username plus password.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	user, err := h.authService.Login(req.Identifier, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apperrors.Respond(c, apperrors.Store("Failed to save session", err))
		return
	}

	c.JSON(http.StatusOK, utils.OK("Login successful", dto.ToUserDTO(*user)))
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apperrors.Respond(c, apperrors.Store("Failed to clear session", err))
		return
	}
	c.JSON(http.StatusOK, utils.OK("Logout successful", nil))
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	user, err := h.authService.GetUser(identity.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Current user", dto.ToUserDTO(*user)))
}

// ForgotPassword issues a password-reset token by mail.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	type ForgotPasswordRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Password reset mail sent", nil))
}

// ResetPassword consumes a reset token and sets a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	type ResetPasswordRequest struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Password updated", nil))
}
