package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/constants"
	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
)

const resetTokenTTL = time.Hour

// AuthService handles signup, login and the password-reset flow.
type AuthService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   *MailerService
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *gorm.DB, mailer *MailerService) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: repository.NewUserRepository(db),
		mailer:   mailer,
	}
}

// SignupInput represents the information to create a new organization
// together with its first admin user.
type SignupInput struct {
	OrganizationName string
	FirstName        string
	LastName         string
	Email            string
	Username         string
	Password         string
}

// Signup creates an organization and its first user atomically. The user
// receives the ORG_ADMIN role row; the effective role stays derived.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	if strings.TrimSpace(input.OrganizationName) == "" {
		return nil, apperrors.Validation("Organization name cannot be empty")
	}
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" {
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
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		orgRepo := repository.NewOrganizationRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		if existing, err := orgRepo.FindByName(input.OrganizationName); err != nil {
			return apperrors.Store("Failed to check organization name", err)
		} else if existing != nil {
			return apperrors.Conflict("Organization already exists with name: " + input.OrganizationName)
		}
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

		org := &models.Organization{Name: input.OrganizationName}
		if err := orgRepo.Create(org); err != nil {
			return apperrors.Store("Failed to create organization", err)
		}

		adminRole, err := findOrCreateRole(tx, models.RoleOrgAdmin)
		if err != nil {
			return apperrors.Store("Failed to resolve role", err)
		}

		user.OrganizationID = org.ID
		user.Roles = []models.Role{*adminRole}
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

// Login verifies credentials and returns the authenticated user. The
// identifier may be an email or a username.
func (s *AuthService) Login(identifier, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(identifier)
	if err != nil {
		return nil, apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		user, err = s.userRepo.FindByUsername(identifier)
		if err != nil {
			return nil, apperrors.Store("Failed to find user", err)
		}
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	return user, nil
}

// GetUser retrieves a user by ID for session restoration.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

// ForgotPassword issues a reset token for the account behind email and
// mails it. An unknown email is reported as NotFound.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperrors.Store("Failed to find user", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	token := uuid.NewString()
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.Store("Failed to store reset token", err)
	}

	return s.mailer.Send(user.Email, TemplatePasswordReset, map[string]string{
		"name":  user.FullName(),
		"token": token,
	})
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return apperrors.Validation("Password is too short")
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.Store("Failed to find user", err)
	}
	if user == nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return apperrors.Unauthorized("Invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Store("Failed to hash password", err)
	}

	user.PasswordHash = string(hashedPassword)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.Store("Failed to update password", err)
	}
	return nil
}

// findOrCreateRole resolves a role row by name, creating it on first use.
func findOrCreateRole(tx *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	if err := tx.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
