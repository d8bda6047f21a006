package models

import (
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Users    []User    `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
	Teams    []Team    `gorm:"foreignKey:OrganizationID" json:"teams,omitempty"`
	Projects []Project `gorm:"foreignKey:OrganizationID" json:"projects,omitempty"`
}
