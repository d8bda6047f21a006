package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// UserService provides business logic for user management inside an
// organization.
type UserService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:       db,
		userRepo: repository.NewUserRepository(db),
	}
}

// CreateUserInput represents parameters to add a user to an organization.
type CreateUserInput struct {
	OrganizationID    uint64
	FirstName         string
	LastName          string
	Email             string
	Username          string
	Password          string
	ProfilePictureURL *string
}

// CreateUser adds a user to an organization with the MEMBER role row.
// Email and username are globally unique among live users.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Username) == "" {
		return nil, apperrors.Validation("Email and username are required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, apperrors.Validation("Password is too short")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Store("Failed to hash password", err)
	}

	user := &models.User{
		OrganizationID:    input.OrganizationID,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		Username:          input.Username,
		PasswordHash:      string(hashedPassword),
		ProfilePictureURL: input.ProfilePictureURL,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)

		if existing, err := userRepo.FindByEmail(input.Email); err != nil {
			return apperrors.Store("Failed to check email", err)
		} else if existing != nil {
			return apperrors.Conflict("User already exists with email: " + input.Email)
		}
		if existing, err := userRepo.FindByUsername(input.Username); err != nil {
			return apperrors.Store("Failed to check username", err)
		} else if existing != nil {
			return apperrors.Conflict("User already exists with username: " + input.Username)
		}

		memberRole, err := findOrCreateRole(tx, models.RoleMember)
		if err != nil {
			return apperrors.Store("Failed to resolve role", err)
		}
		user.Roles = []models.Role{*memberRole}

		if err := userRepo.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("User already exists")
			}
			return apperrors.Store("Failed to create user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser returns a user within the caller's organization.
func (s *UserService) GetUser(id, organizationID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByIDInOrganization(id, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

// ListUsers lists an organization's users with filtering and pagination.
func (s *UserService) ListUsers(organizationID uint64, filter utils.ListFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(organizationID, filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list users", err)
	}
	return users, total, nil
}

// UpdateUserInput represents mutable user profile fields.
type UpdateUserInput struct {
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
}

// UpdateUser updates a user's profile fields.
func (s *UserService) UpdateUser(id, organizationID uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByIDInOrganization(id, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfilePictureURL != nil {
		user.ProfilePictureURL = input.ProfilePictureURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.Store("Failed to update user", err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user within the caller's organization.
func (s *UserService) DeleteUser(id, organizationID uint64) error {
	user, err := s.userRepo.FindByIDInOrganization(id, organizationID)
	if err != nil {
		return apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.Store("Failed to delete user", err)
	}
	return nil
}
