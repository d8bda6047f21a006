package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// GormBookmarkRepository is a GORM implementation of BookmarkRepository
type GormBookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

// Create creates a new bookmark
func (r *GormBookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// Find finds a bookmark by its unique (user, entity type, entity id) triple
func (r *GormBookmarkRepository) Find(userID uint64, entityType models.BookmarkEntityType, entityID uint64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.
		Where("user_id = ? AND entity_type = ? AND entity_id = ?", userID, entityType, entityID).
		First(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

// List retrieves bookmarks newest-first joined against their target table.
// The join target is chosen by a static switch on the validated entity
// type; the tag value is never spliced into the query text.
func (r *GormBookmarkRepository) List(userID uint64, entityType models.BookmarkEntityType, limit, page int) ([]BookmarkRow, int64, error) {
	base := r.db.Table("bookmarks").
		Where("bookmarks.user_id = ? AND bookmarks.entity_type = ?", userID, entityType)

	switch entityType {
	case models.BookmarkEntityTask:
		base = base.
			Select("bookmarks.id, bookmarks.user_id, bookmarks.entity_type, bookmarks.entity_id, bookmarks.created_at, tasks.title AS entity_name").
			Joins("JOIN tasks ON tasks.id = bookmarks.entity_id AND tasks.deleted_at IS NULL")
	case models.BookmarkEntityProject:
		base = base.
			Select("bookmarks.id, bookmarks.user_id, bookmarks.entity_type, bookmarks.entity_id, bookmarks.created_at, projects.name AS entity_name").
			Joins("JOIN projects ON projects.id = bookmarks.entity_id AND projects.deleted_at IS NULL")
	default:
		return nil, 0, fmt.Errorf("unsupported bookmark entity type %q", entityType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []BookmarkRow
	if err := base.
		Order("bookmarks.created_at DESC").
		Offset(limit * (page - 1)).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Delete hard-deletes a bookmark
func (r *GormBookmarkRepository) Delete(userID uint64, entityType models.BookmarkEntityType, entityID uint64) error {
	return r.db.
		Where("user_id = ? AND entity_type = ? AND entity_id = ?", userID, entityType, entityID).
		Delete(&models.Bookmark{}).Error
}
