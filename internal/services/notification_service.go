package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// NotificationService provides read access to a user's notifications.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		notificationRepo: repository.NewNotificationRepository(db),
	}
}

// ListNotifications lists a user's notifications newest-first.
func (s *NotificationService) ListNotifications(userID uint64, filter utils.ListFilter) ([]models.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.ListByUser(userID, filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list notifications", err)
	}
	return notifications, total, nil
}

// MarkSeen stamps one of the user's notifications as seen.
func (s *NotificationService) MarkSeen(id, userID uint64) error {
	notification, err := s.notificationRepo.FindByID(id, userID)
	if err != nil {
		return apperrors.Store("Failed to find notification", err)
	}
	if notification == nil {
		return apperrors.NotFound("Notification not found")
	}

	if err := s.notificationRepo.MarkSeen(id, userID, time.Now()); err != nil {
		return apperrors.Store("Failed to mark notification seen", err)
	}
	return nil
}

// MarkAllSeen stamps all of the user's unseen notifications.
func (s *NotificationService) MarkAllSeen(userID uint64) error {
	if err := s.notificationRepo.MarkAllSeen(userID, time.Now()); err != nil {
		return apperrors.Store("Failed to mark notifications seen", err)
	}
	return nil
}
