package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                uint64         `gorm:"primarykey" json:"id"`
	OrganizationID    uint64         `gorm:"not null;index" json:"organization_id"`
	FirstName         string         `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName          string         `gorm:"type:varchar(255);not null" json:"last_name"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash      string         `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePictureURL *string        `gorm:"type:varchar(512)" json:"profile_picture_url"`
	ResetToken        *string        `gorm:"type:varchar(64);index" json:"-"`
	ResetTokenExpiry  *time.Time     `json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Roles        []Role       `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

// FullName returns the display name used in notifications and mails.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
