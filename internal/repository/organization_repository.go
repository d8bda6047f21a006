package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *GormOrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// FindByID finds a live organization by ID
func (r *GormOrganizationRepository) FindByID(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// FindByName finds a live organization by its natural key
func (r *GormOrganizationRepository) FindByName(name string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Where("name = ?", name).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete soft deletes an organization
func (r *GormOrganizationRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Organization{}, id).Error
}

// List retrieves organizations with filtering and pagination
func (r *GormOrganizationRepository) List(filter utils.ListFilter) ([]models.Organization, int64, error) {
	var orgs []models.Organization

	query := r.db.Model(&models.Organization{}).
		Scopes(database.Search("name", filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Scopes(database.Sort(filter), database.Paginate(filter)).
		Find(&orgs).Error; err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}
