package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a live task by ID within one tenant, with optional preloading
func (r *GormTaskRepository) FindByID(id, organizationID uint64, preload ...string) (*models.Task, error) {
	query := r.db.Scopes(database.TaskInOrganization(organizationID))
	for _, p := range preload {
		query = query.Preload(p)
	}

	var task models.Task
	if err := query.Where("tasks.id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// FindByTitle finds a live task by its natural key within one tenant
func (r *GormTaskRepository) FindByTitle(title string, organizationID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.
		Scopes(database.TaskInOrganization(organizationID)).
		Where("tasks.title = ?", title).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a task and hard-deletes its tag mappings
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TagMapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

// List retrieves tasks in an organization with filtering and pagination.
// Sort columns are qualified with the tasks table because the tenant scope
// joins projects, which shares column names with tasks.
func (r *GormTaskRepository) List(organizationID uint64, projectID *uint64, filter utils.ListFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).
		Scopes(database.TaskInOrganization(organizationID), database.Search("tasks.title", filter))

	if projectID != nil {
		query = query.Where("tasks.project_id = ?", *projectID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("tasks.priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if filter.Order == utils.OrderDesc {
		direction = "DESC"
	}

	if err := query.
		Preload("Author").
		Preload("Assignee").
		Preload("Tags").
		Order("tasks."+filter.SortBy+" "+direction).
		Scopes(database.Paginate(filter)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// CreateComment creates a new comment
func (r *GormTaskRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindCommentByID finds a live comment by ID
func (r *GormTaskRepository) FindCommentByID(id uint64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// UpdateComment updates a comment
func (r *GormTaskRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteComment soft deletes a comment
func (r *GormTaskRepository) DeleteComment(id uint64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// ListComments lists the live comments on a task, oldest first
func (r *GormTaskRepository) ListComments(taskID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
