package models

import "time"

// BookmarkEntityType is the closed set of entities a bookmark may target.
type BookmarkEntityType string

const (
	BookmarkEntityTask    BookmarkEntityType = "Task"
	BookmarkEntityProject BookmarkEntityType = "Project"
)

// Valid reports whether t is one of the two supported targets. Any query
// touching the target table must go through a static switch on a validated
// value, never through string interpolation of the raw input.
func (t BookmarkEntityType) Valid() bool {
	return t == BookmarkEntityTask || t == BookmarkEntityProject
}

// Bookmark is a polymorphic association: EntityID is meaningful only in
// combination with EntityType. Bookmarks are hard-deleted when removed.
type Bookmark struct {
	ID         uint64             `gorm:"primarykey" json:"id"`
	UserID     uint64             `gorm:"not null;uniqueIndex:idx_bookmarks_user_entity" json:"user_id"`
	EntityType BookmarkEntityType `gorm:"type:varchar(20);not null;uniqueIndex:idx_bookmarks_user_entity" json:"entity_type"`
	EntityID   uint64             `gorm:"not null;uniqueIndex:idx_bookmarks_user_entity" json:"entity_id"`
	CreatedAt  time.Time          `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
