package dto

import (
	"time"

	"github.com/arnavsharma2711/pianifica-sub000/internal/models"
)

// TeamDTO represents a team in API responses.
type TeamDTO struct {
	ID             uint64   `json:"id"`
	OrganizationID uint64   `json:"organization_id"`
	Name           string   `json:"name"`
	LeadID         uint64   `json:"lead_id"`
	ManagerID      uint64   `json:"manager_id"`
	Lead           *UserDTO `json:"lead,omitempty"`
	Manager        *UserDTO `json:"manager,omitempty"`
}

// TeamMemberDTO represents a plain member in API responses.
type TeamMemberDTO struct {
	User     UserDTO   `json:"user"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamDetailDTO represents a team together with its plain members.
type TeamDetailDTO struct {
	TeamDTO
	Members []TeamMemberDTO `json:"members"`
}

// ToTeamDTO converts a Team model to TeamDTO.
func ToTeamDTO(team models.Team) TeamDTO {
	dto := TeamDTO{
		ID:             team.ID,
		OrganizationID: team.OrganizationID,
		Name:           team.Name,
		LeadID:         team.LeadID,
		ManagerID:      team.ManagerID,
	}
	if team.Lead.ID != 0 {
		lead := ToUserDTO(team.Lead)
		dto.Lead = &lead
	}
	if team.Manager.ID != 0 {
		manager := ToUserDTO(team.Manager)
		dto.Manager = &manager
	}
	return dto
}

// ToTeamDTOs converts a slice of teams.
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, team := range teams {
		dtos[i] = ToTeamDTO(team)
	}
	return dtos
}

// ToTeamDetailDTO converts a team with its members to a detail DTO.
func ToTeamDetailDTO(team models.Team, members []models.TeamMember) TeamDetailDTO {
	memberDTOs := make([]TeamMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = TeamMemberDTO{
			User:     ToUserDTO(member.User),
			JoinedAt: member.JoinedAt,
		}
	}
	return TeamDetailDTO{
		TeamDTO: ToTeamDTO(team),
		Members: memberDTOs,
	}
}
