package repository

import (
	"time"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// Resolver methods (FindBy*) return (nil, nil) when no live row matches;
// absence is a signal, not an error. Callers decide whether it is fatal.

// OrganizationRepository defines data access for organizations.
type OrganizationRepository interface {
	Create(org *models.Organization) error
	FindByID(id uint64) (*models.Organization, error)
	FindByName(name string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uint64) error
	List(filter utils.ListFilter) ([]models.Organization, int64, error)
}

// UserRepository defines data access for users and their role rows.
type UserRepository interface {
	Create(user *models.User) error

	// FindByID resolves a user without organization scoping; it backs the
	// session identity lookup where the tenant is not yet known.
	FindByID(id uint64) (*models.User, error)

	// FindByIDInOrganization resolves a user within one tenant.
	FindByIDInOrganization(id, organizationID uint64) (*models.User, error)

	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByResetToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint64) error
	List(organizationID uint64, filter utils.ListFilter) ([]models.User, int64, error)
}

// TeamRepository defines data access for teams and plain memberships.
type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id, organizationID uint64) (*models.Team, error)
	FindByName(name string, organizationID uint64) (*models.Team, error)
	Update(team *models.Team) error

	// Delete soft-deletes the team and, when cascade is set, hard-deletes
	// the remaining membership rows in the same transaction.
	Delete(id uint64, cascade bool) error

	List(organizationID uint64, filter utils.ListFilter) ([]models.Team, int64, error)

	AddMember(member *models.TeamMember) error
	RemoveMember(teamID, userID uint64) error
	FindMember(teamID, userID uint64) (*models.TeamMember, error)
	CountMembers(teamID uint64) (int64, error)
	ListMembers(teamID uint64) ([]models.TeamMember, error)
}

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id, organizationID uint64) (*models.Project, error)
	FindByName(name string, organizationID uint64) (*models.Project, error)
	Update(project *models.Project) error
	Delete(id uint64) error
	List(organizationID uint64, filter utils.ListFilter) ([]models.Project, int64, error)
}

// TaskRepository defines data access for tasks and comments. Tasks are
// scoped to a tenant through their owning project.
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id, organizationID uint64, preload ...string) (*models.Task, error)
	FindByTitle(title string, organizationID uint64) (*models.Task, error)
	Update(task *models.Task) error
	Delete(id uint64) error
	List(organizationID uint64, projectID *uint64, filter utils.ListFilter) ([]models.Task, int64, error)

	CreateComment(comment *models.Comment) error
	FindCommentByID(id uint64) (*models.Comment, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint64) error
	ListComments(taskID uint64) ([]models.Comment, error)
}

// TagRepository defines data access for the tag catalog and the task/tag
// mapping rows used by reconciliation.
type TagRepository interface {
	Create(tag *models.Tag) error
	FindByID(id uint64) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	FindByNames(names []string) ([]models.Tag, error)
	List(filter utils.ListFilter) ([]models.Tag, int64, error)
	Delete(id uint64) error

	CountMappings(tagID uint64) (int64, error)
	ListTagsByTask(taskID uint64) ([]models.Tag, error)
	AddMappings(taskID uint64, tagIDs []uint64) error
	RemoveMappings(taskID uint64, tagIDs []uint64) error
}

// BookmarkRow is a bookmark joined against its target entity.
type BookmarkRow struct {
	ID         uint64                    `json:"id"`
	UserID     uint64                    `json:"user_id"`
	EntityType models.BookmarkEntityType `json:"entity_type"`
	EntityID   uint64                    `json:"entity_id"`
	EntityName string                    `json:"entity_name"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// BookmarkRepository defines data access for polymorphic bookmarks.
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	Find(userID uint64, entityType models.BookmarkEntityType, entityID uint64) (*models.Bookmark, error)
	List(userID uint64, entityType models.BookmarkEntityType, limit, page int) ([]BookmarkRow, int64, error)
	Delete(userID uint64, entityType models.BookmarkEntityType, entityID uint64) error
}

// NotificationRepository defines data access for the notification sink.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id, userID uint64) (*models.Notification, error)
	ListByUser(userID uint64, filter utils.ListFilter) ([]models.Notification, int64, error)
	MarkSeen(id, userID uint64, at time.Time) error
	MarkAllSeen(userID uint64, at time.Time) error
}
