package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	db      *gorm.DB
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{
		db:      db,
		orgRepo: repository.NewOrganizationRepository(db),
	}
}

// CreateOrganization creates a new organization with a unique name. The
// existence check and the insert run in one transaction; a duplicate-key
// error from the store is treated as the same Conflict.
func (s *OrganizationService) CreateOrganization(name string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("Organization name cannot be empty")
	}

	org := &models.Organization{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orgRepo := repository.NewOrganizationRepository(tx)

		existing, err := orgRepo.FindByName(name)
		if err != nil {
			return apperrors.Store("Failed to check organization name", err)
		}
		if existing != nil {
			return apperrors.Conflict("Organization already exists with name: " + name)
		}

		if err := orgRepo.Create(org); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Organization already exists with name: " + name)
			}
			return apperrors.Store("Failed to create organization", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// GetOrganization returns an organization by id.
func (s *OrganizationService) GetOrganization(id uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Store("Failed to find organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound("Organization not found")
	}
	return org, nil
}

// ListOrganizations lists organizations with filtering and pagination.
func (s *OrganizationService) ListOrganizations(filter utils.ListFilter) ([]models.Organization, int64, error) {
	orgs, total, err := s.orgRepo.List(filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list organizations", err)
	}
	return orgs, total, nil
}

// UpdateOrganization renames an organization, keeping the name unique.
func (s *OrganizationService) UpdateOrganization(id uint64, name string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("Organization name cannot be empty")
	}

	var org *models.Organization
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orgRepo := repository.NewOrganizationRepository(tx)

		var err error
		org, err = orgRepo.FindByID(id)
		if err != nil {
			return apperrors.Store("Failed to find organization", err)
		}
		if org == nil {
			return apperrors.NotFound("Organization not found")
		}

		if org.Name != name {
			existing, err := orgRepo.FindByName(name)
			if err != nil {
				return apperrors.Store("Failed to check organization name", err)
			}
			if existing != nil {
				return apperrors.Conflict("Organization already exists with name: " + name)
			}
		}

		org.Name = name
		if err := orgRepo.Update(org); err != nil {
			return apperrors.Store("Failed to update organization", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// DeleteOrganization soft-deletes an organization.
func (s *OrganizationService) DeleteOrganization(id uint64) error {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return apperrors.Store("Failed to find organization", err)
	}
	if org == nil {
		return apperrors.NotFound("Organization not found")
	}

	if err := s.orgRepo.Delete(id); err != nil {
		return apperrors.Store("Failed to delete organization", err)
	}
	return nil
}
