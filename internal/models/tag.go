package models

type Tag struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// TagMapping joins tags to tasks. Mappings are hard-deleted when unlinked;
// there is no soft delete on association rows.
type TagMapping struct {
	TagID  uint64 `gorm:"primarykey" json:"tag_id"`
	TaskID uint64 `gorm:"primarykey" json:"task_id"`
}
