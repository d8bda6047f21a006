package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type BookmarkHandler struct {
	bookmarkService *services.BookmarkService
}

func NewBookmarkHandler() *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: services.NewBookmarkService(database.GetDB()),
	}
}

// CreateBookmark bookmarks a task or project for the caller.
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	type CreateBookmarkRequest struct {
		EntityType string `json:"entity_type" binding:"required"`
		EntityID   uint64 `json:"entity_id" binding:"required"`
	}
	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	bookmark, err := h.bookmarkService.CreateBookmark(
		identity.UserID,
		identity.OrganizationID,
		models.BookmarkEntityType(req.EntityType),
		req.EntityID,
	)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Bookmark created", bookmark))
}

// ListBookmarks lists the caller's bookmarks of one entity type, newest
// first, each row carrying the live target's display name.
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	entityType := models.BookmarkEntityType(c.Query("entity_type"))

	limit := constants.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
			if limit > constants.MaxPageSize {
				limit = constants.MaxPageSize
			}
		}
	}
	page := constants.MinPage
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= constants.MinPage {
			page = parsed
		}
	}

	rows, total, err := h.bookmarkService.ListBookmarks(identity.UserID, entityType, limit, page)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Bookmarks fetched", rows, total))
}

// DeleteBookmark removes the caller's bookmark on one entity.
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	entityType := models.BookmarkEntityType(c.Query("entity_type"))
	entityID, err := strconv.ParseUint(c.Query("entity_id"), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid entity_id parameter"))
		return
	}

	if err := h.bookmarkService.DeleteBookmark(identity.UserID, entityType, entityID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Bookmark deleted", nil))
}
