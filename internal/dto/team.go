package dto

import (
	"github.com/luanvr/project-management-api/internal/services"
)

// TeamDTO represents a team in API responses, enriched with the usernames
// resolved from its role references.
type TeamDTO struct {
	ID                     uint64  `json:"id"`
	TeamName               string  `json:"teamName"`
	ProductOwnerUserID     *uint64 `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID   *uint64 `json:"projectManagerUserId,omitempty"`
	ProductOwnerUsername   *string `json:"productOwnerUsername,omitempty"`
	ProjectManagerUsername *string `json:"projectManagerUsername,omitempty"`
}

// ToTeamDTO converts an enriched team to its response shape
func ToTeamDTO(team services.TeamWithUsernames) TeamDTO {
	return TeamDTO{
		ID:                     team.Team.ID,
		TeamName:               team.Team.TeamName,
		ProductOwnerUserID:     team.Team.ProductOwnerUserID,
		ProjectManagerUserID:   team.Team.ProjectManagerUserID,
		ProductOwnerUsername:   team.ProductOwnerUsername,
		ProjectManagerUsername: team.ProjectManagerUsername,
	}
}

// ToTeamDTOs converts a slice of enriched teams
func ToTeamDTOs(teams []services.TeamWithUsernames) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, team := range teams {
		dtos[i] = ToTeamDTO(team)
	}
	return dtos
}
