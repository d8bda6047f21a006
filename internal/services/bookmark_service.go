package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
)

// BookmarkService manages polymorphic bookmarks over the closed set of
// Task and Project targets. The target table is always selected by a
// static switch on a validated entity type.
type BookmarkService struct {
	db           *gorm.DB
	bookmarkRepo repository.BookmarkRepository
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	userRepo     repository.UserRepository
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		db:           db,
		bookmarkRepo: repository.NewBookmarkRepository(db),
		taskRepo:     repository.NewTaskRepository(db),
		projectRepo:  repository.NewProjectRepository(db),
		userRepo:     repository.NewUserRepository(db),
	}
}

// resolveTarget checks that the bookmark target exists in the caller's
// organization, dispatching on the entity type variant.
func (s *BookmarkService) resolveTarget(tx *gorm.DB, entityType models.BookmarkEntityType, entityID, organizationID uint64) error {
	switch entityType {
	case models.BookmarkEntityTask:
		task, err := repository.NewTaskRepository(tx).FindByID(entityID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to verify bookmark target", err)
		}
		if task == nil {
			return apperrors.NotFound("Task not found")
		}
	case models.BookmarkEntityProject:
		project, err := repository.NewProjectRepository(tx).FindByID(entityID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to verify bookmark target", err)
		}
		if project == nil {
			return apperrors.NotFound("Project not found")
		}
	default:
		return apperrors.Validation("Unknown bookmark entity type: " + string(entityType))
	}
	return nil
}

// CreateBookmark bookmarks an entity for a user. Duplicate bookmarks are
// rejected, as are targets or users that do not resolve in the caller's
// organization.
func (s *BookmarkService) CreateBookmark(userID, organizationID uint64, entityType models.BookmarkEntityType, entityID uint64) (*models.Bookmark, error) {
	if !entityType.Valid() {
		return nil, apperrors.Validation("Unknown bookmark entity type: " + string(entityType))
	}

	bookmark := &models.Bookmark{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bookmarkRepo := repository.NewBookmarkRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		existing, err := bookmarkRepo.Find(userID, entityType, entityID)
		if err != nil {
			return apperrors.Store("Failed to check bookmark", err)
		}
		if existing != nil {
			return apperrors.Conflict("Bookmark already exists")
		}

		if err := s.resolveTarget(tx, entityType, entityID, organizationID); err != nil {
			return err
		}

		user, err := userRepo.FindByIDInOrganization(userID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to verify user", err)
		}
		if user == nil {
			return apperrors.NotFound("User not found in organization")
		}

		if err := bookmarkRepo.Create(bookmark); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Bookmark already exists")
			}
			return apperrors.Store("Failed to create bookmark", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

// ListBookmarks lists a user's bookmarks of one entity type newest-first,
// joined against the target table.
func (s *BookmarkService) ListBookmarks(userID uint64, entityType models.BookmarkEntityType, limit, page int) ([]repository.BookmarkRow, int64, error) {
	if !entityType.Valid() {
		return nil, 0, apperrors.Validation("Unknown bookmark entity type: " + string(entityType))
	}

	rows, total, err := s.bookmarkRepo.List(userID, entityType, limit, page)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list bookmarks", err)
	}
	return rows, total, nil
}

// DeleteBookmark removes a bookmark. A missing row is NotFound.
func (s *BookmarkService) DeleteBookmark(userID uint64, entityType models.BookmarkEntityType, entityID uint64) error {
	if !entityType.Valid() {
		return apperrors.Validation("Unknown bookmark entity type: " + string(entityType))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		bookmarkRepo := repository.NewBookmarkRepository(tx)

		existing, err := bookmarkRepo.Find(userID, entityType, entityID)
		if err != nil {
			return apperrors.Store("Failed to check bookmark", err)
		}
		if existing == nil {
			return apperrors.NotFound("Bookmark does not exist")
		}

		if err := bookmarkRepo.Delete(userID, entityType, entityID); err != nil {
			return apperrors.Store("Failed to delete bookmark", err)
		}
		return nil
	})
}
