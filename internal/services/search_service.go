package services

import (
	"fmt"

	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/repository"
)

// SearchService fans a free-text query across tasks, projects and users
type SearchService struct {
	searchRepo repository.SearchRepository
}

// NewSearchService creates a new SearchService
func NewSearchService(searchRepo repository.SearchRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo}
}

// SearchResults holds the three parallel result sets of a search. No
// ranking or pagination is applied.
type SearchResults struct {
	Tasks    []models.Task    `json:"tasks"`
	Projects []models.Project `json:"projects"`
	Users    []models.User    `json:"users"`
}

// Search runs independent substring matches against task title/description,
// project name/description and usernames.
func (s *SearchService) Search(query string) (*SearchResults, error) {
	tasks, err := s.searchRepo.SearchTasks(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	projects, err := s.searchRepo.SearchProjects(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}

	users, err := s.searchRepo.SearchUsers(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return &SearchResults{
		Tasks:    tasks,
		Projects: projects,
		Users:    users,
	}, nil
}
