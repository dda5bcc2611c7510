package services

import (
	"errors"
	"fmt"

	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/repository"
	"gorm.io/gorm"
)

// TeamService handles team business logic
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// TeamWithUsernames is a team enriched with the resolved usernames of its
// role references.
type TeamWithUsernames struct {
	Team                   models.Team
	ProductOwnerUsername   *string
	ProjectManagerUsername *string
}

// ListTeams returns all teams, each enriched with the product owner and
// project manager usernames resolved through two point lookups.
func (s *TeamService) ListTeams() ([]TeamWithUsernames, error) {
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	enriched := make([]TeamWithUsernames, len(teams))
	for i, team := range teams {
		item := TeamWithUsernames{Team: team}

		productOwner, err := s.resolveUsername(team.ProductOwnerUserID)
		if err != nil {
			return nil, err
		}
		item.ProductOwnerUsername = productOwner

		projectManager, err := s.resolveUsername(team.ProjectManagerUserID)
		if err != nil {
			return nil, err
		}
		item.ProjectManagerUsername = projectManager

		enriched[i] = item
	}

	return enriched, nil
}

// resolveUsername looks up a username by user ID. A nil ID or a missing
// user resolves to nil rather than an error.
func (s *TeamService) resolveUsername(userID *uint64) (*string, error) {
	if userID == nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(*userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve username: %w", err)
	}

	return &user.Username, nil
}
