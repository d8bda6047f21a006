package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	OrganizationID uint64         `gorm:"not null;index" json:"organization_id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	LeadID         uint64         `gorm:"not null" json:"lead_id"`
	ManagerID      uint64         `gorm:"not null" json:"manager_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Lead         User         `gorm:"foreignKey:LeadID" json:"lead,omitempty"`
	Manager      User         `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Members      []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// TeamMember is a plain membership row. Lead and manager are foreign keys
// on Team, never membership rows; the two sets must stay disjoint.
type TeamMember struct {
	TeamID   uint64    `gorm:"primarykey" json:"team_id"`
	UserID   uint64    `gorm:"primarykey" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
