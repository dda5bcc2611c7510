package repository

import (
	"github.com/luanvr/project-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List retrieves all projects
	List() ([]models.Project, error)

	// Delete removes a project and cascades to its tasks, comments
	// and attachments inside a single transaction
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject retrieves all tasks of a project with author,
	// assignee, comments and attachments preloaded
	ListByProject(projectID uint64) ([]models.Task, error)

	// ListByUser retrieves tasks where the user is author or assignee
	ListByUser(userID uint64) ([]models.Task, error)

	// UpdateStatus updates only the status field of a task
	UpdateStatus(id uint64, status models.TaskStatus) error

	// Delete removes a task together with its comments and attachments
	Delete(id uint64) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// List retrieves all teams
	List() ([]models.Team, error)
}

// SearchRepository defines the substring search queries used by the
// search endpoint
type SearchRepository interface {
	// SearchTasks matches the query against task title and description
	SearchTasks(query string) ([]models.Task, error)

	// SearchProjects matches the query against project name and description
	SearchProjects(query string) ([]models.Project, error)

	// SearchUsers matches the query against usernames
	SearchUsers(query string) ([]models.User, error)
}
