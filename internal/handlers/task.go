package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/luanvr/project-management-api/internal/errors"
	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title          string  `json:"title" binding:"required"`
		Description    *string `json:"description"`
		Status         string  `json:"status"`
		Priority       string  `json:"priority"`
		Tags           *string `json:"tags"`
		StartDate      *string `json:"startDate"`
		DueDate        *string `json:"dueDate"`
		Points         *int    `json:"points"`
		ProjectID      uint64  `json:"projectId" binding:"required"`
		AuthorUserID   uint64  `json:"authorUserId" binding:"required"`
		AssignedUserID *uint64 `json:"assignedUserId"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid startDate")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid dueDate")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.TaskStatus(req.Status),
		Priority:       models.TaskPriority(req.Priority),
		Tags:           req.Tags,
		StartDate:      startDate,
		DueDate:        dueDate,
		Points:         req.Points,
		ProjectID:      req.ProjectID,
		AuthorUserID:   req.AuthorUserID,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns all tasks of the project given in the projectId query
// parameter, with author, assignee, comments and attachments included.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("projectId"), 10, 64)
	if err != nil || projectID == 0 {
		apierrors.BadRequest(c, "Invalid projectId")
		return
	}

	tasks, err := h.taskService.ListTasksByProject(projectID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListUserTasks returns tasks where the user is author or assignee.
func (h *TaskHandler) ListUserTasks(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	tasks, err := h.taskService.ListTasksByUser(userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTaskStatus performs a partial update restricted to the status field.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.taskService.UpdateTaskStatus(taskID, models.TaskStatus(req.Status))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task and returns the deleted record.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.DeleteTask(taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrProjectRequired),
		errors.Is(err, services.ErrAuthorRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
