package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	OrganizationID uint64         `gorm:"not null;index:idx_projects_org_name" json:"organization_id"`
	Name           string         `gorm:"type:varchar(255);not null;index:idx_projects_org_name" json:"name"`
	Description    *string        `gorm:"type:text" json:"description"`
	StartDate      *time.Time     `json:"start_date"`
	EndDate        *time.Time     `json:"end_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Tasks        []Task       `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
