package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/dto"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
	tagService  *services.TagService
}

func NewTaskHandler() *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(database.GetDB()),
		tagService:  services.NewTagService(database.GetDB()),
	}
}

// CreateTask creates a task under a project of the caller's organization.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	type CreateTaskRequest struct {
		ProjectID   uint64     `json:"project_id" binding:"required"`
		Title       string     `json:"title" binding:"required"`
		Description *string    `json:"description"`
		Status      string     `json:"status"`
		Priority    string     `json:"priority"`
		StartDate   *time.Time `json:"start_date"`
		DueDate     *time.Time `json:"due_date"`
		Points      *int       `json:"points"`
		AssigneeID  *uint64    `json:"assignee_id"`
	}
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		ProjectID:      req.ProjectID,
		OrganizationID: identity.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.TaskStatus(req.Status),
		Priority:       models.TaskPriority(req.Priority),
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		Points:         req.Points,
		AuthorID:       identity.UserID,
		AssigneeID:     req.AssigneeID,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Task created", dto.ToTaskDTO(*task)))
}

// GetTask returns a task of the caller's organization.
func (h *TaskHandler) GetTask(c *gin.Context) {
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

	task, err := h.taskService.GetTask(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task fetched", dto.ToTaskDTO(*task)))
}

// ListTasks lists the organization's tasks, optionally narrowed to one
// project via the project_id query parameter.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	var projectID *uint64
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid project_id parameter"))
			return
		}
		projectID = &id
	}

	filter := utils.FiltersFromQuery(c, utils.EntityKindTasks)
	tasks, total, err := h.taskService.ListTasks(identity.OrganizationID, projectID, filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OKList("Tasks fetched", dto.ToTaskDTOs(tasks), total))
}

// UpdateTask updates a task's descriptive fields.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
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

	type UpdateTaskRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		DueDate     *time.Time `json:"due_date"`
		Points      *int       `json:"points"`
	}
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	task, err := h.taskService.UpdateTask(id, identity.OrganizationID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Points:      req.Points,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task updated", dto.ToTaskDTO(*task)))
}

// DeleteTask soft-deletes a task and clears its tag assignments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	if err := h.taskService.DeleteTask(id, identity.OrganizationID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task deleted", nil))
}

// UpdateStatus moves a task to a new status. Moving to the current status
// is a conflict.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
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

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	task, err := h.taskService.UpdateStatus(id, models.TaskStatus(req.Status), identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task status updated", dto.ToTaskDTO(*task)))
}

// UpdatePriority moves a task to a new priority.
func (h *TaskHandler) UpdatePriority(c *gin.Context) {
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

	type UpdatePriorityRequest struct {
		Priority string `json:"priority" binding:"required"`
	}
	var req UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	task, err := h.taskService.UpdatePriority(id, models.TaskPriority(req.Priority), identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task priority updated", dto.ToTaskDTO(*task)))
}

// UpdateAssignee reassigns a task to another member of the organization.
func (h *TaskHandler) UpdateAssignee(c *gin.Context) {
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

	type UpdateAssigneeRequest struct {
		AssigneeID uint64 `json:"assignee_id" binding:"required"`
	}
	var req UpdateAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	task, err := h.taskService.UpdateAssignee(id, req.AssigneeID, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task assignee updated", dto.ToTaskDTO(*task)))
}

// ReconcileTags replaces the task's tag set with the submitted names.
func (h *TaskHandler) ReconcileTags(c *gin.Context) {
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

	type ReconcileTagsRequest struct {
		Tags []string `json:"tags"`
	}
	var req ReconcileTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.tagService.ReconcileTaskTags(id, identity.OrganizationID, req.Tags); err != nil {
		apperrors.Respond(c, err)
		return
	}

	task, err := h.taskService.GetTask(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Task tags updated", dto.ToTaskDTO(*task)))
}

// AddComment posts a comment on a task and notifies the task's author and
// assignee.
func (h *TaskHandler) AddComment(c *gin.Context) {
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

	type AddCommentRequest struct {
		Text string `json:"text" binding:"required"`
	}
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	comment, err := h.taskService.AddComment(id, req.Text, identity.UserID, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.OK("Comment added", dto.ToCommentDTO(*comment)))
}

// ListComments lists a task's comments oldest first.
func (h *TaskHandler) ListComments(c *gin.Context) {
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

	comments, err := h.taskService.ListComments(id, identity.OrganizationID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Comments fetched", dto.ToCommentDTOs(comments)))
}

// UpdateComment edits a comment. Only the comment's author may do so.
func (h *TaskHandler) UpdateComment(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	type UpdateCommentRequest struct {
		Text string `json:"text" binding:"required"`
	}
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	comment, err := h.taskService.UpdateComment(commentID, req.Text, identity.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Comment updated", dto.ToCommentDTO(*comment)))
}

// DeleteComment removes a comment. Only the comment's author may do so.
func (h *TaskHandler) DeleteComment(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.RespondUnauthenticated(c)
		return
	}

	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.taskService.DeleteComment(commentID, identity.UserID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.OK("Comment deleted", nil))
}
