package dto

import (
	"time"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID          uint64              `json:"id"`
	ProjectID   uint64              `json:"project_id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	StartDate   *time.Time          `json:"start_date"`
	DueDate     *time.Time          `json:"due_date"`
	Points      *int                `json:"points"`
	AuthorID    uint64              `json:"author_id"`
	AssigneeID  *uint64             `json:"assignee_id"`
	Tags        []string            `json:"tags"`
	Author      *UserDTO            `json:"author,omitempty"`
	Assignee    *UserDTO            `json:"assignee,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CommentDTO represents a comment in API responses.
type CommentDTO struct {
	ID        uint64    `json:"id"`
	TaskID    uint64    `json:"task_id"`
	UserID    uint64    `json:"user_id"`
	Text      string    `json:"text"`
	User      *UserDTO  `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	tags := make([]string, len(task.Tags))
	for i, tag := range task.Tags {
		tags[i] = tag.Name
	}

	dto := TaskDTO{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		StartDate:   task.StartDate,
		DueDate:     task.DueDate,
		Points:      task.Points,
		AuthorID:    task.AuthorID,
		AssigneeID:  task.AssigneeID,
		Tags:        tags,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Author.ID != 0 {
		author := ToUserDTO(task.Author)
		dto.Author = &author
	}
	if task.Assignee != nil && task.Assignee.ID != 0 {
		assignee := ToUserDTO(*task.Assignee)
		dto.Assignee = &assignee
	}
	return dto
}

// ToTaskDTOs converts a slice of tasks.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToCommentDTO converts a Comment model to CommentDTO.
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User.ID != 0 {
		user := ToUserDTO(comment.User)
		dto.User = &user
	}
	return dto
}

// ToCommentDTOs converts a slice of comments.
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}
