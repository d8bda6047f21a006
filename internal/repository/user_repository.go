package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a live user by ID, with role rows preloaded
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Roles").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDInOrganization finds a live user by ID within one tenant
func (r *GormUserRepository) FindByIDInOrganization(id, organizationID uint64) (*models.User, error) {
	var user models.User
	if err := r.db.
		Scopes(database.InOrganization(organizationID)).
		Preload("Roles").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a live user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findBy("email = ?", email)
}

// FindByUsername finds a live user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	return r.findBy("username = ?", username)
}

// FindByResetToken finds a live user holding the given password-reset token
func (r *GormUserRepository) FindByResetToken(token string) (*models.User, error) {
	return r.findBy("reset_token = ?", token)
}

func (r *GormUserRepository) findBy(condition string, value string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Roles").Where(condition, value).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete soft deletes a user
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}

// List retrieves users in an organization with filtering and pagination
func (r *GormUserRepository) List(organizationID uint64, filter utils.ListFilter) ([]models.User, int64, error) {
	var users []models.User

	query := r.db.Model(&models.User{}).
		Scopes(database.InOrganization(organizationID), database.Search("username", filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Roles").
		Scopes(database.Sort(filter), database.Paginate(filter)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
