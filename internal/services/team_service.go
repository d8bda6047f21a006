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

// TeamService enforces team composition rules. Lead and manager are
// foreign keys on the team row, never membership rows, so every
// membership mutation cross-checks against both before touching the
// join table.
type TeamService struct {
	db       *gorm.DB
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db:       db,
		teamRepo: repository.NewTeamRepository(db),
		userRepo: repository.NewUserRepository(db),
	}
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	OrganizationID uint64
	Name           string
	LeadID         uint64
	ManagerID      uint64
}

// CreateTeam creates a team with a name unique among the organization's
// live teams. Lead and manager must both resolve in the organization.
// The same user may hold both roles.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("Team name cannot be empty")
	}

	team := &models.Team{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		LeadID:         input.LeadID,
		ManagerID:      input.ManagerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		existing, err := teamRepo.FindByName(input.Name, input.OrganizationID)
		if err != nil {
			return apperrors.Store("Failed to check team name", err)
		}
		if existing != nil {
			return apperrors.Conflict("Team already exists with name: " + input.Name)
		}

		for _, userID := range []uint64{input.LeadID, input.ManagerID} {
			user, err := userRepo.FindByIDInOrganization(userID, input.OrganizationID)
			if err != nil {
				return apperrors.Store("Failed to verify user", err)
			}
			if user == nil {
				return apperrors.NotFound("User not found in organization")
			}
		}

		if err := teamRepo.Create(team); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Team already exists with name: " + input.Name)
			}
			return apperrors.Store("Failed to create team", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam returns a team with its plain members.
func (s *TeamService) GetTeam(id, organizationID uint64) (*models.Team, []models.TeamMember, error) {
	team, err := s.teamRepo.FindByID(id, organizationID)
	if err != nil {
		return nil, nil, apperrors.Store("Failed to find team", err)
	}
	if team == nil {
		return nil, nil, apperrors.NotFound("Team not found")
	}

	members, err := s.teamRepo.ListMembers(id)
	if err != nil {
		return nil, nil, apperrors.Store("Failed to list team members", err)
	}

	return team, members, nil
}

// ListTeams lists an organization's teams with filtering and pagination.
func (s *TeamService) ListTeams(organizationID uint64, filter utils.ListFilter) ([]models.Team, int64, error) {
	teams, total, err := s.teamRepo.List(organizationID, filter)
	if err != nil {
		return nil, 0, apperrors.Store("Failed to list teams", err)
	}
	return teams, total, nil
}

// UpdateTeamInput represents mutable team fields.
type UpdateTeamInput struct {
	Name      *string
	LeadID    *uint64
	ManagerID *uint64
}

// UpdateTeam updates a team. Only the team's current manager may do so.
func (s *TeamService) UpdateTeam(id, organizationID, actorID uint64, input UpdateTeamInput) (*models.Team, error) {
	var team *models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		var err error
		team, err = teamRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find team", err)
		}
		if team == nil {
			return apperrors.NotFound("Team not found")
		}

		if team.ManagerID != actorID {
			return apperrors.Unauthorized("Only the team manager can update the team")
		}

		if input.Name != nil && *input.Name != team.Name {
			if strings.TrimSpace(*input.Name) == "" {
				return apperrors.Validation("Team name cannot be empty")
			}
			existing, err := teamRepo.FindByName(*input.Name, organizationID)
			if err != nil {
				return apperrors.Store("Failed to check team name", err)
			}
			if existing != nil {
				return apperrors.Conflict("Team already exists with name: " + *input.Name)
			}
			team.Name = *input.Name
		}

		for _, change := range []struct {
			id     *uint64
			target *uint64
		}{
			{input.LeadID, &team.LeadID},
			{input.ManagerID, &team.ManagerID},
		} {
			if change.id == nil {
				continue
			}
			user, err := userRepo.FindByIDInOrganization(*change.id, organizationID)
			if err != nil {
				return apperrors.Store("Failed to verify user", err)
			}
			if user == nil {
				return apperrors.NotFound("User not found in organization")
			}

			// A lead or manager can never also be a plain member.
			member, err := teamRepo.FindMember(id, *change.id)
			if err != nil {
				return apperrors.Store("Failed to verify team membership", err)
			}
			if member != nil {
				return apperrors.Conflict("User is already a member of the team")
			}
			*change.target = *change.id
		}

		if err := teamRepo.Update(team); err != nil {
			return apperrors.Store("Failed to update team", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam soft-deletes a team. Only the current manager may delete it,
// and a team that still has plain members is refused unless the caller
// opts into cascading member removal.
func (s *TeamService) DeleteTeam(id, organizationID, actorID uint64, cascade bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)

		team, err := teamRepo.FindByID(id, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find team", err)
		}
		if team == nil {
			return apperrors.NotFound("Team not found")
		}

		if team.ManagerID != actorID {
			return apperrors.Unauthorized("Only the team manager can delete the team")
		}

		count, err := teamRepo.CountMembers(id)
		if err != nil {
			return apperrors.Store("Failed to count team members", err)
		}
		if count > 0 && !cascade {
			return apperrors.Conflict("Team still has members")
		}

		if err := teamRepo.Delete(id, cascade); err != nil {
			return apperrors.Store("Failed to delete team", err)
		}
		return nil
	})
}

// AddMember adds a plain member to a team. The actor must be the team's
// manager or hold admin privilege. The target must not already be the
// lead, the manager, or a plain member, and must exist in the
// organization.
func (s *TeamService) AddMember(teamID, userID, organizationID, actorID uint64, isAdmin bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		team, err := teamRepo.FindByID(teamID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find team", err)
		}
		if team == nil {
			return apperrors.NotFound("Team not found")
		}

		if team.ManagerID != actorID && !isAdmin {
			return apperrors.Unauthorized("Only the team manager or an admin can add members")
		}

		if team.LeadID == userID {
			return apperrors.Conflict("User is already the lead of the team")
		}
		if team.ManagerID == userID {
			return apperrors.Conflict("User is already the manager of the team")
		}

		member, err := teamRepo.FindMember(teamID, userID)
		if err != nil {
			return apperrors.Store("Failed to verify team membership", err)
		}
		if member != nil {
			return apperrors.Conflict("User is already a member of the team")
		}

		user, err := userRepo.FindByIDInOrganization(userID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to verify user", err)
		}
		if user == nil {
			return apperrors.NotFound("User not found in organization")
		}

		newMember := &models.TeamMember{
			TeamID:   teamID,
			UserID:   userID,
			JoinedAt: time.Now(),
		}
		if err := teamRepo.AddMember(newMember); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("User is already a member of the team")
			}
			return apperrors.Store("Failed to add team member", err)
		}
		return nil
	})
}

// RemoveMember removes a plain member from a team. The lead and the
// manager can never be removed through the member path.
func (s *TeamService) RemoveMember(teamID, userID, organizationID, actorID uint64, isAdmin bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)

		team, err := teamRepo.FindByID(teamID, organizationID)
		if err != nil {
			return apperrors.Store("Failed to find team", err)
		}
		if team == nil {
			return apperrors.NotFound("Team not found")
		}

		if team.ManagerID != actorID && !isAdmin {
			return apperrors.Unauthorized("Only the team manager or an admin can remove members")
		}

		if team.LeadID == userID {
			return apperrors.Conflict("Team lead cannot be removed from the team")
		}
		if team.ManagerID == userID {
			return apperrors.Conflict("Team manager cannot be removed from the team")
		}

		member, err := teamRepo.FindMember(teamID, userID)
		if err != nil {
			return apperrors.Store("Failed to verify team membership", err)
		}
		if member == nil {
			return apperrors.NotFound("User is not a member of the team")
		}

		if err := teamRepo.RemoveMember(teamID, userID); err != nil {
			return apperrors.Store("Failed to remove team member", err)
		}
		return nil
	})
}
