package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{
		notificationService: services.NewNotificationService(database.GetDB()),
	}
}

// ListNotifications lists the caller's notifications newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	filter := utils.FiltersFromQuery(c, "")
	notifications, total, err := h.notificationService.ListNotifications(identity.UserID, filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Notifications fetched", notifications, total))
}

// MarkSeen marks one of the caller's notifications as seen.
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
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

	if err := h.notificationService.MarkSeen(id, identity.UserID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Notification marked as seen", nil))
}

// MarkAllSeen marks every unseen notification of the caller as seen.
func (h *NotificationHandler) MarkAllSeen(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	if err := h.notificationService.MarkAllSeen(identity.UserID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Notifications marked as seen", nil))
}
