package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// TagService maintains the tag catalog and reconciles task tag sets.
type TagService struct {
	db       *gorm.DB
	tagRepo  repository.TagRepository
	taskRepo repository.TaskRepository
}

// NewTagService creates a new TagService.
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{
		db:       db,
		tagRepo:  repository.NewTagRepository(db),
		taskRepo: repository.NewTaskRepository(db),
	}
}

// CreateTag creates a tag with a globally unique name.
func (s *TagService) CreateTag(name string) (*models.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("Tag name cannot be empty")
	}

	tag := &models.Tag{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tagRepo := repository.NewTagRepository(tx)

		existing, err := tagRepo.FindByName(name)
		if err != nil {
			return apperrors.Store("Failed to check tag name", err)
		}
		if existing != nil {
			return apperrors.Conflict("Tag already exists with name: " + name)
		}

		if err := tagRepo.Create(tag); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Tag already exists with name: " + name)
			}
			return apperrors.Store("Failed to create tag", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

// ListTags lists the tag catalog with filtering and pagination.
func (s *TagService) ListTags(filter utils.ListFilter) ([]models.Tag, int64, error) {
	tags, total, err := s.tagRepo.List(filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list tags", err)
	}
	return tags, total, nil
}

// DeleteTag removes a tag from the catalog. A tag still referenced by any
// task mapping is refused.
func (s *TagService) DeleteTag(id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tagRepo := repository.NewTagRepository(tx)

		tag, err := tagRepo.FindByID(id)
		if err != nil {
			return apperrors.Store("Failed to find tag", err)
		}
		if tag == nil {
			return apperrors.NotFound("Tag not found")
		}

		count, err := tagRepo.CountMappings(id)
		if err != nil {
			return apperrors.Store("Failed to count tag usage", err)
		}
		if count > 0 {
			return apperrors.Conflict("Tag is still assigned to tasks")
		}

		if err := tagRepo.Delete(id); err != nil {
			return apperrors.Store("Failed to delete tag", err)
		}
		return nil
	})
}

// ReconcileTaskTags diffs a task's current tag set against the desired tag
// names and applies the minimal add/remove delta. Desired names that do
// not resolve to an existing tag are skipped; the engine never creates
// tags. Reconciling with the current set is a no-op.
func (s *TagService) ReconcileTaskTags(taskID, organizationID uint64, desired []string) error {
	task, err := s.taskRepo.FindByID(taskID, organizationID)
	if err != nil {
		return apperrors.Store("Failed to find task", err)
	}
	if task == nil {
		return apperrors.NotFound("Task not found")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tagRepo := repository.NewTagRepository(tx)

		current, err := tagRepo.ListTagsByTask(taskID)
		if err != nil {
			return apperrors.Store("Failed to load current tags", err)
		}

		desiredSet := make(map[string]bool, len(desired))
		for _, name := range desired {
			desiredSet[name] = true
		}
		currentSet := make(map[string]uint64, len(current))
		for _, tag := range current {
			currentSet[tag.Name] = tag.ID
		}

		var toAdd []string
		for name := range desiredSet {
			if _, ok := currentSet[name]; !ok {
				toAdd = append(toAdd, name)
			}
		}
		var toRemove []uint64
		for name, id := range currentSet {
			if !desiredSet[name] {
				toRemove = append(toRemove, id)
			}
		}

		resolved, err := tagRepo.FindByNames(toAdd)
		if err != nil {
			return apperrors.Store("Failed to resolve tags", err)
		}
		addIDs := make([]uint64, 0, len(resolved))
		for _, tag := range resolved {
			addIDs = append(addIDs, tag.ID)
		}

		if err := tagRepo.AddMappings(taskID, addIDs); err != nil {
			return apperrors.Store("Failed to add tag mappings", err)
		}
		if err := tagRepo.RemoveMappings(taskID, toRemove); err != nil {
			return apperrors.Store("Failed to remove tag mappings", err)
		}
		return nil
	})
}
