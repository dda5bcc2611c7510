package client

import (
	"context"
	"fmt"
	"net/http"
)

// GetProjects returns all projects.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	return query(ctx, c, "projects", "/projects", func([]Project) []Tag {
		return []Tag{{Type: TagTypeProjects}}
	})
}

// CreateProjectInput holds the fields of the project creation request.
type CreateProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// CreateProject creates a project and invalidates the cached project list.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	var project Project
	err := c.mutate(ctx, http.MethodPost, "/projects", input, &project, []Tag{
		{Type: TagTypeProjects},
	})
	return project, err
}

// DeleteProject removes a project (cascading to its tasks server-side) and
// invalidates the cached project list. The deleted record is returned.
func (c *Client) DeleteProject(ctx context.Context, projectID uint64) (Project, error) {
	var project Project
	path := fmt.Sprintf("/projects/%d", projectID)
	err := c.mutate(ctx, http.MethodDelete, path, nil, &project, []Tag{
		{Type: TagTypeProjects},
	})
	return project, err
}
