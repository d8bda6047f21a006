package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/logging"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// Notification type/subtype written by the comment fan-out.
const (
	notificationTypeTask       = "Task"
	notificationSubTypeComment = "Comment"
)

// TaskService handles the task lifecycle: creation, guarded transitions,
// comments and the notification fan-out they trigger.
type TaskService struct {
	db               *gorm.DB
	taskRepo         repository.TaskRepository
	projectRepo      repository.ProjectRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{
		db:               db,
		taskRepo:         repository.NewTaskRepository(db),
		projectRepo:      repository.NewProjectRepository(db),
		userRepo:         repository.NewUserRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
	}
}

// CreateTaskInput represents parameters to create a new task.
type CreateTaskInput struct {
	ProjectID      uint64
	OrganizationID uint64
	Title          string
	Description    *string
	Status         models.TaskStatus
	Priority       models.TaskPriority
	StartDate      *time.Time
	DueDate        *time.Time
	Points         *int
	AuthorID       uint64
	AssigneeID     *uint64
}

// CreateTask creates a task under a project of the caller's organization.
// The title must be unique among the organization's live tasks.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.Validation("Task title cannot be empty")
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, apperrors.Validation("Unknown task status: " + string(input.Status))
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityBacklog
	}
	if !input.Priority.Valid() {
		return nil, apperrors.Validation("Unknown task priority: " + string(input.Priority))
	}

	task := &models.Task{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		Points:      input.Points,
		AuthorID:    input.AuthorID,
		AssigneeID:  input.AssigneeID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)
		projectRepo := repository.NewProjectRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		project, err := projectRepo.FindByID(input.ProjectID, input.OrganizationID)
		if err != nil {
			return apperrors.Store("Failed to find project", err)
		}
		if project == nil {
			return apperrors.NotFound("Project not found")
		}

		existing, err := taskRepo.FindByTitle(input.Title, input.OrganizationID)
		if err != nil {
			return apperrors.Store("Failed to check task title", err)
		}
		if existing != nil {
			return apperrors.Conflict("Task already exists with title: " + input.Title)
		}

		if input.AssigneeID != nil {
			assignee, err := userRepo.FindByIDInOrganization(*input.AssigneeID, input.OrganizationID)
			if err != nil {
				return apperrors.Store("Failed to verify assignee", err)
			}
			if assignee == nil {
				return apperrors.NotFound("Assignee not found in organization")
			}
		}

		if err := taskRepo.Create(task); err != nil {
			return apperrors.Store("Failed to create task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask returns a task with related data.
func (s *TaskService) GetTask(id, organizationID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, organizationID, "Author", "Assignee", "Tags", "Project")
	if err != nil {
		return nil, apperrors.Store("Failed to find task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}
	return task, nil
}

// ListTasks lists an organization's tasks, optionally restricted to one
// project, with filtering and pagination.
func (s *TaskService) ListTasks(organizationID uint64, projectID *uint64, filter utils.ListFilter) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(organizationID, projectID, filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list tasks", err)
	}
	return tasks, total, nil
}

// UpdateTaskInput represents mutable task fields. Nil pointers leave the
// current value untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	Points      *int
}

// UpdateTask updates a task's descriptive fields, re-checking title
// uniqueness when the title changes. Status, priority and assignee move
// through their dedicated guarded transitions.
func (s *TaskService) UpdateTask(id, organizationID uint64, input UpdateTaskInput) (*models.Task, error) {
	var task *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)

		var err error
		task, err = taskRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find task", err)
		}
		if task == nil {
			return apperrors.NotFound("Task not found")
		}

		if input.Title != nil && *input.Title != task.Title {
			if strings.TrimSpace(*input.Title) == "" {
				return apperrors.Validation("Task title cannot be empty")
			}
			existing, err := taskRepo.FindByTitle(*input.Title, organizationID)
			if err != nil {
				return apperrors.Store("Failed to check task title", err)
			}
			if existing != nil {
				return apperrors.Conflict("Task already exists with title: " + *input.Title)
			}
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = input.Description
		}
		if input.StartDate != nil {
			task.StartDate = input.StartDate
		}
		if input.DueDate != nil {
			task.DueDate = input.DueDate
		}
		if input.Points != nil {
			task.Points = input.Points
		}

		if err := taskRepo.Update(task); err != nil {
			return apperrors.Store("Failed to update task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask soft-deletes a task within the caller's organization.
func (s *TaskService) DeleteTask(id, organizationID uint64) error {
	task, err := s.taskRepo.FindByID(id, organizationID)
	if err != nil {
		return apperrors.Store("Failed to find task", err)
	}
	if task == nil {
		return apperrors.NotFound("Task not found")
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return apperrors.Store("Failed to delete task", err)
	}
	return nil
}

// UpdateStatus moves a task to a new status. Any status may transition to
// any other; the only forbidden transition is the self-loop.
func (s *TaskService) UpdateStatus(id uint64, newStatus models.TaskStatus, organizationID uint64) (*models.Task, error) {
	if !newStatus.Valid() {
		return nil, apperrors.Validation("Unknown task status: " + string(newStatus))
	}

	var task *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)

		var err error
		task, err = taskRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find task", err)
		}
		if task == nil {
			return apperrors.NotFound("Task not found")
		}
		if task.Status == newStatus {
			return apperrors.Conflict("Task is already in status: " + string(newStatus))
		}

		task.Status = newStatus
		if err := taskRepo.Update(task); err != nil {
			return apperrors.Store("Failed to update task status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdatePriority moves a task to a new priority, symmetric to UpdateStatus.
func (s *TaskService) UpdatePriority(id uint64, newPriority models.TaskPriority, organizationID uint64) (*models.Task, error) {
	if !newPriority.Valid() {
		return nil, apperrors.Validation("Unknown task priority: " + string(newPriority))
	}

	var task *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)

		var err error
		task, err = taskRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find task", err)
		}
		if task == nil {
			return apperrors.NotFound("Task not found")
		}
		if task.Priority == newPriority {
			return apperrors.Conflict("Task is already at priority: " + string(newPriority))
		}

		task.Priority = newPriority
		if err := taskRepo.Update(task); err != nil {
			return apperrors.Store("Failed to update task priority", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateAssignee reassigns a task. Assigning to the current assignee is
// rejected; the candidate must resolve in the organization.
func (s *TaskService) UpdateAssignee(id, newAssigneeID, organizationID uint64) (*models.Task, error) {
	var task *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		var err error
		task, err = taskRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find task", err)
		}
		if task == nil {
			return apperrors.NotFound("Task not found")
		}
		if task.AssigneeID != nil && *task.AssigneeID == newAssigneeID {
			return apperrors.Conflict("Task is already assigned to this user")
		}

		assignee, err := userRepo.FindByIDInOrganization(newAssigneeID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to verify assignee", err)
		}
		if assignee == nil {
			return apperrors.NotFound("Assignee not found in organization")
		}

		task.AssigneeID = &newAssigneeID
		if err := taskRepo.Update(task); err != nil {
			return apperrors.Store("Failed to update task assignee", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// AddComment adds a comment to a task and fans out one notification to
// the task's author and, if distinct, one to its assignee. The fan-out is
// best-effort: a failed notification write is logged and never rolls back
// the comment.
func (s *TaskService) AddComment(taskID uint64, text string, authorUserID, organizationID uint64) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("Comment text cannot be empty")
	}

	task, err := s.taskRepo.FindByID(taskID, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to find task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}

	commenter, err := s.userRepo.FindByIDInOrganization(authorUserID, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to verify user", err)
	}
	if commenter == nil {
		return nil, apperrors.NotFound("User not found in organization")
	}

	comment := &models.Comment{
		TaskID: taskID,
		UserID: authorUserID,
		Text:   text,
	}
	if err := s.taskRepo.CreateComment(comment); err != nil {
		return nil, apperrors.Store("Failed to create comment", err)
	}

	s.fanOutCommentNotifications(task, commenter)

	return comment, nil
}

// fanOutCommentNotifications writes the notification rows for a new
// comment. Recipients are the task author and the assignee when distinct.
func (s *TaskService) fanOutCommentNotifications(task *models.Task, commenter *models.User) {
	message := commenter.FullName() + " commented on task: " + task.Title

	recipients := []uint64{task.AuthorID}
	if task.AssigneeID != nil && *task.AssigneeID != task.AuthorID {
		recipients = append(recipients, *task.AssigneeID)
	}

	for _, userID := range recipients {
		notification := &models.Notification{
			UserID:  userID,
			Type:    notificationTypeTask,
			SubType: notificationSubTypeComment,
		}
		if err := notification.SetContent(models.NotificationContent{
			EntityType: notificationTypeTask,
			EntityID:   task.ID,
			Message:    message,
		}); err != nil {
			logging.Logger.WithError(err).Warn("failed to encode notification content")
			continue
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			logging.Logger.WithError(err).WithField("user_id", userID).
				Warn("failed to write comment notification")
		}
	}
}

// UpdateComment edits a comment's text. Only the comment owner may edit.
func (s *TaskService) UpdateComment(commentID uint64, text string, actorID uint64) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("Comment text cannot be empty")
	}

	comment, err := s.taskRepo.FindCommentByID(commentID)
	if err != nil {
		return nil, apperrors.Store("Failed to find comment", err)
	}
	if comment == nil {
		return nil, apperrors.NotFound("Comment not found")
	}
	if comment.UserID != actorID {
		return nil, apperrors.Unauthorized("Only the comment owner can edit the comment")
	}

	comment.Text = text
	if err := s.taskRepo.UpdateComment(comment); err != nil {
		return nil, apperrors.Store("Failed to update comment", err)
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment. Only the comment owner may delete.
func (s *TaskService) DeleteComment(commentID, actorID uint64) error {
	comment, err := s.taskRepo.FindCommentByID(commentID)
	if err != nil {
		return apperrors.Store("Failed to find comment", err)
	}
	if comment == nil {
		return apperrors.NotFound("Comment not found")
	}
	if comment.UserID != actorID {
		return apperrors.Unauthorized("Only the comment owner can delete the comment")
	}

	if err := s.taskRepo.DeleteComment(commentID); err != nil {
		return apperrors.Store("Failed to delete comment", err)
	}
	return nil
}

// ListComments lists a task's comments, oldest first.
func (s *TaskService) ListComments(taskID, organizationID uint64) ([]models.Comment, error) {
	task, err := s.taskRepo.FindByID(taskID, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to find task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}

	comments, err := s.taskRepo.ListComments(taskID)
	if err != nil {
		return nil, apperrors.Store("Failed to list comments", err)
	}
	return comments, nil
}
