package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusBlocked      TaskStatus = "BLOCKED"
	TaskStatusTodo         TaskStatus = "TODO"
	TaskStatusInProgress   TaskStatus = "IN_PROGRESS"
	TaskStatusUnderReview  TaskStatus = "UNDER_REVIEW"
	TaskStatusReleaseReady TaskStatus = "RELEASE_READY"
	TaskStatusCompleted    TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBlocked, TaskStatusTodo, TaskStatusInProgress,
		TaskStatusUnderReview, TaskStatusReleaseReady, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityBacklog TaskPriority = "BACKLOG"
	TaskPriorityLow     TaskPriority = "LOW"
	TaskPriorityMedium  TaskPriority = "MEDIUM"
	TaskPriorityHigh    TaskPriority = "HIGH"
	TaskPriorityUrgent  TaskPriority = "URGENT"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityBacklog, TaskPriorityLow, TaskPriorityMedium,
		TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	ProjectID   uint64         `gorm:"not null;index" json:"project_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'TODO'" json:"status"`
	Priority    TaskPriority   `gorm:"type:varchar(20);not null;default:'BACKLOG'" json:"priority"`
	StartDate   *time.Time     `json:"start_date"`
	DueDate     *time.Time     `json:"due_date"`
	Points      *int           `json:"points"`
	AuthorID    uint64         `gorm:"not null;index" json:"author_id"`
	AssigneeID  *uint64        `gorm:"index" json:"assignee_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project  Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Assignee *User     `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Tags     []Tag     `gorm:"many2many:tag_mappings" json:"tags,omitempty"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
