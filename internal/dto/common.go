package dto

import (
	"time"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// UserDTO represents a user in API responses. Role is the effective role
// derived from the user's role rows at read time.
type UserDTO struct {
	ID                uint64  `json:"id"`
	OrganizationID    uint64  `json:"organization_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	Role              string  `json:"role"`
}

// OrganizationDTO represents an organization in API responses.
type OrganizationDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO, deriving the effective role.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                user.ID,
		OrganizationID:    user.OrganizationID,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		Username:          user.Username,
		ProfilePictureURL: user.ProfilePictureURL,
		Role:              models.DetermineHighestRole(user.Roles),
	}
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO.
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
	}
}
