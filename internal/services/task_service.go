package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrProjectRequired = errors.New("projectId is required")
	ErrAuthorRequired  = errors.New("authorUserId is required")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrTaskNotFound    = errors.New("task not found")
)

// taskDetailPreloads are the relations returned with a full task payload
var taskDetailPreloads = []string{"Author", "Assignee", "Comments", "Attachments"}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title          string
	Description    *string
	Status         models.TaskStatus
	Priority       models.TaskPriority
	Tags           *string
	StartDate      *time.Time
	DueDate        *time.Time
	Points         *int
	ProjectID      uint64
	AuthorUserID   uint64
	AssignedUserID *uint64
}

// CreateTask validates input and creates a new task. Missing status and
// priority fall back to their defaults before any persistence call.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.ProjectID == 0 {
		return nil, ErrProjectRequired
	}
	if input.AuthorUserID == 0 {
		return nil, ErrAuthorRequired
	}

	if input.Status == "" {
		input.Status = models.StatusToDo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if input.Priority == "" {
		input.Priority = models.PriorityBacklog
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		Tags:           input.Tags,
		StartDate:      input.StartDate,
		DueDate:        input.DueDate,
		Points:         input.Points,
		ProjectID:      input.ProjectID,
		AuthorUserID:   input.AuthorUserID,
		AssignedUserID: input.AssignedUserID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, taskDetailPreloads...)
}

// ListTasksByProject returns all tasks of a project with related data
func (s *TaskService) ListTasksByProject(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByUser returns tasks where the user is author or assignee
func (s *TaskService) ListTasksByUser(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus performs a partial update restricted to the status
// field. Any status is reachable from any other; no transition graph is
// enforced.
func (s *TaskService) UpdateTaskStatus(taskID uint64, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.taskRepo.UpdateStatus(taskID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return s.taskRepo.FindByID(taskID, taskDetailPreloads...)
}

// DeleteTask removes a task with its comments and attachments and returns
// the deleted record for the response payload.
func (s *TaskService) DeleteTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}
