package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a live project by ID within one tenant
func (r *GormProjectRepository) FindByID(id, organizationID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Scopes(database.InOrganization(organizationID)).
		First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// FindByName finds a live project by its natural key within one tenant
func (r *GormProjectRepository) FindByName(name string, organizationID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Scopes(database.InOrganization(organizationID)).
		Where("name = ?", name).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete soft deletes a project
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// List retrieves projects in an organization with filtering and pagination
func (r *GormProjectRepository) List(organizationID uint64, filter utils.ListFilter) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).
		Scopes(database.InOrganization(organizationID), database.Search("name", filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Scopes(database.Sort(filter), database.Paginate(filter)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
