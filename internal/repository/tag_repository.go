package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// Create creates a new tag
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// FindByID finds a tag by ID
func (r *GormTagRepository) FindByID(id uint64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FindByName finds a tag by its globally unique name
func (r *GormTagRepository) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FindByNames bulk-resolves tag names to rows. Unknown names are simply
// absent from the result.
func (r *GormTagRepository) FindByNames(names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := r.db.Where("name IN ?", names).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// List retrieves tags with filtering and pagination
func (r *GormTagRepository) List(filter utils.ListFilter) ([]models.Tag, int64, error) {
	var tags []models.Tag

	query := r.db.Model(&models.Tag{}).
		Scopes(database.Search("name", filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("name ASC").
		Scopes(database.Paginate(filter)).
		Find(&tags).Error; err != nil {
		return nil, 0, err
	}

	return tags, total, nil
}

// Delete hard-deletes a tag from the catalog
func (r *GormTagRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Tag{}, id).Error
}

// CountMappings counts the mapping rows still referencing a tag
func (r *GormTagRepository) CountMappings(tagID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TagMapping{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error
	return count, err
}

// ListTagsByTask returns the tags currently mapped to a task
func (r *GormTagRepository) ListTagsByTask(taskID uint64) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.
		Joins("JOIN tag_mappings ON tag_mappings.tag_id = tags.id").
		Where("tag_mappings.task_id = ?", taskID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// AddMappings inserts mapping rows for the given tag ids
func (r *GormTagRepository) AddMappings(taskID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	mappings := make([]models.TagMapping, len(tagIDs))
	for i, tagID := range tagIDs {
		mappings[i] = models.TagMapping{TagID: tagID, TaskID: taskID}
	}
	return r.db.Create(&mappings).Error
}

// RemoveMappings hard-deletes mapping rows for the given tag ids
func (r *GormTagRepository) RemoveMappings(taskID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return r.db.Where("task_id = ? AND tag_id IN ?", taskID, tagIDs).
		Delete(&models.TagMapping{}).Error
}
