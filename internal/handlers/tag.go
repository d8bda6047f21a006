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

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler() *TagHandler {
	return &TagHandler{
		tagService: services.NewTagService(database.GetDB()),
	}
}

// CreateTag registers a tag in the global vocabulary. Admin only.
func (h *TagHandler) CreateTag(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("Only an admin can create tags"))
		return
	}

	type CreateTagRequest struct {
		Name string `json:"name" binding:"required"`
	}
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	tag, err := h.tagService.CreateTag(req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Tag created", tag))
}

// ListTags lists the tag vocabulary.
func (h *TagHandler) ListTags(c *gin.Context) {
	if _, ok := middleware.GetIdentity(c); !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	filter := utils.FiltersFromQuery(c, "")
	tags, total, err := h.tagService.ListTags(filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Tags fetched", tags, total))
}

// DeleteTag removes a tag. A tag still assigned to tasks is a conflict.
// Admin only.
func (h *TagHandler) DeleteTag(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}
	if !identity.IsAdmin() {
		apperrors.Respond(c, apperrors.Unauthorized("Only an admin can delete tags"))
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.tagService.DeleteTag(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Tag deleted", nil))
}
