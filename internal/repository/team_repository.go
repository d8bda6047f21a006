package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
	"github.com/arnavsharma2711/pianifica-sub000/internal/utils"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a live team by ID within one tenant
func (r *GormTeamRepository) FindByID(id, organizationID uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.
		Scopes(database.InOrganization(organizationID)).
		First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// FindByName finds a live team by its natural key within one tenant
func (r *GormTeamRepository) FindByName(name string, organizationID uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.
		Scopes(database.InOrganization(organizationID)).
		Where("name = ?", name).
		First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete soft deletes a team, removing membership rows first when cascade
// is requested. Membership rows are pure associations and are hard-deleted.
func (r *GormTeamRepository) Delete(id uint64, cascade bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if cascade {
			if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Team{}, id).Error
	})
}

// List retrieves teams in an organization with filtering and pagination
func (r *GormTeamRepository) List(organizationID uint64, filter utils.ListFilter) ([]models.Team, int64, error) {
	var teams []models.Team

	query := r.db.Model(&models.Team{}).
		Scopes(database.InOrganization(organizationID), database.Search("name", filter))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Lead").
		Preload("Manager").
		Scopes(database.Sort(filter), database.Paginate(filter)).
		Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// AddMember inserts a plain membership row
func (r *GormTeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember hard-deletes a plain membership row
func (r *GormTeamRepository) RemoveMember(teamID, userID uint64) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{}).Error
}

// FindMember finds a specific plain membership row
func (r *GormTeamRepository) FindMember(teamID, userID uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// CountMembers counts the plain members of a team
func (r *GormTeamRepository) CountMembers(teamID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

// ListMembers lists the plain members of a team with users preloaded
func (r *GormTeamRepository) ListMembers(teamID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
