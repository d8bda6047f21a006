package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/repository"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	db          *gorm.DB
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:          db,
		projectRepo: repository.NewProjectRepository(db),
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	OrganizationID uint64
	Name           string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
}

// CreateProject creates a project with a name unique among the live
// projects of the organization.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("Project name cannot be empty")
	}

	project := &models.Project{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Description:    input.Description,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projectRepo := repository.NewProjectRepository(tx)

		existing, err := projectRepo.FindByName(input.Name, input.OrganizationID)
		if err != nil {
			return apperrors.Store("Failed to check project name", err)
		}
		if existing != nil {
			return apperrors.Conflict("Project already exists with name: " + input.Name)
		}

		if err := projectRepo.Create(project); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Project already exists with name: " + input.Name)
			}
			return apperrors.Store("Failed to create project", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// GetProject returns a project within the caller's organization.
func (s *ProjectService) GetProject(id, organizationID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, organizationID)
	if err != nil {
		return nil, apperrors.Store("Failed to find project", err)
	}
	if project == nil {
		return nil, apperrors.NotFound("Project not found")
	}
	return project, nil
}

// ListProjects lists an organization's projects with filtering and pagination.
func (s *ProjectService) ListProjects(organizationID uint64, filter utils.ListFilter) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(organizationID, filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list projects", err)
	}
	return projects, total, nil
}

// UpdateProjectInput represents mutable project fields. Nil pointers leave
// the current value untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateProject updates a project, re-checking name uniqueness when the
// name changes.
func (s *ProjectService) UpdateProject(id, organizationID uint64, input UpdateProjectInput) (*models.Project, error) {
	var project *models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projectRepo := repository.NewProjectRepository(tx)

		var err error
		project, err = projectRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find project", err)
		}
		if project == nil {
			return apperrors.NotFound("Project not found")
		}

		if input.Name != nil && *input.Name != project.Name {
			if strings.TrimSpace(*input.Name) == "" {
				return apperrors.Validation("Project name cannot be empty")
			}
			existing, err := projectRepo.FindByName(*input.Name, organizationID)
			if err != nil {
				return apperrors.Store("Failed to check project name", err)
			}
			if existing != nil {
				return apperrors.Conflict("Project already exists with name: " + *input.Name)
			}
			project.Name = *input.Name
		}
		if input.Description != nil {
			project.Description = input.Description
		}
		if input.StartDate != nil {
			project.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			project.EndDate = input.EndDate
		}

		if err := projectRepo.Update(project); err != nil {
			return apperrors.Store("Failed to update project", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject soft-deletes a project within the caller's organization.
func (s *ProjectService) DeleteProject(id, organizationID uint64) error {
	project, err := s.projectRepo.FindByID(id, organizationID)
	if err != nil {
		return apperrors.Store("Failed to find project", err)
	}
	if project == nil {
		return apperrors.NotFound("Project not found")
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return apperrors.Store("Failed to delete project", err)
	}
	return nil
}
