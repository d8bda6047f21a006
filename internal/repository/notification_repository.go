package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create inserts a notification row
func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// FindByID finds a notification belonging to the given user
func (r *GormNotificationRepository) FindByID(id, userID uint64) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// ListByUser retrieves a user's notifications newest-first
func (r *GormNotificationRepository) ListByUser(userID uint64, filter utils.ListFilter) ([]models.Notification, int64, error) {
	var notifications []models.Notification

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Scopes(database.Paginate(filter)).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkSeen stamps a single notification as seen
func (r *GormNotificationRepository) MarkSeen(id, userID uint64, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("seen_at", at).Error
}

// MarkAllSeen stamps all of a user's unseen notifications
func (r *GormNotificationRepository) MarkAllSeen(userID uint64, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND seen_at IS NULL", userID).
		Update("seen_at", at).Error
}
