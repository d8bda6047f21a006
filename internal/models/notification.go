package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// NotificationContent is the payload stored in Notification.Content.
type NotificationContent struct {
	EntityType string `json:"entity_type"`
	EntityID   uint64 `json:"entity_id"`
	Message    string `json:"message,omitempty"`
}

type Notification struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	Type      string         `gorm:"type:varchar(50);not null" json:"type"`
	SubType   string         `gorm:"type:varchar(50);not null" json:"sub_type"`
	Content   datatypes.JSON `json:"content"`
	SeenAt    *time.Time     `json:"seen_at"`
	CreatedAt time.Time      `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// SetContent marshals payload into the JSON column.
func (n *Notification) SetContent(payload NotificationContent) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	n.Content = datatypes.JSON(raw)
	return nil
}

// GetContent unmarshals the JSON column back into a payload.
func (n *Notification) GetContent() (NotificationContent, error) {
	var payload NotificationContent
	if len(n.Content) == 0 {
		return payload, nil
	}
	err := json.Unmarshal(n.Content, &payload)
	return payload, err
}
