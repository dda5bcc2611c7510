package client

import (
	"context"
	"fmt"
	"net/http"
)

// taskListTags derives the tag set of a task list result: one per-id tag
// per returned task, or the generic Tasks tag when the list is empty so
// the entry stays invalidatable.
func taskListTags(tasks []Task) []Tag {
	if len(tasks) == 0 {
		return []Tag{{Type: TagTypeTasks}}
	}

	tags := make([]Tag, len(tasks))
	for i, task := range tasks {
		tags[i] = Tag{Type: TagTypeTasks, ID: task.ID}
	}
	return tags
}

// GetTasks returns all tasks of a project with author, assignee, comments
// and attachments included.
func (c *Client) GetTasks(ctx context.Context, projectID uint64) ([]Task, error) {
	key := fmt.Sprintf("tasks?projectId=%d", projectID)
	return query(ctx, c, key, "/"+key, taskListTags)
}

// GetTasksByUser returns tasks where the user is author or assignee.
func (c *Client) GetTasksByUser(ctx context.Context, userID uint64) ([]Task, error) {
	key := fmt.Sprintf("tasks/user/%d", userID)
	return query(ctx, c, key, "/"+key, taskListTags)
}

// CreateTaskInput holds the fields of the task creation request.
type CreateTaskInput struct {
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	Status         TaskStatus   `json:"status,omitempty"`
	Priority       TaskPriority `json:"priority,omitempty"`
	Tags           *string      `json:"tags,omitempty"`
	StartDate      *string      `json:"startDate,omitempty"`
	DueDate        *string      `json:"dueDate,omitempty"`
	Points         *int         `json:"points,omitempty"`
	ProjectID      uint64       `json:"projectId"`
	AuthorUserID   uint64       `json:"authorUserId"`
	AssignedUserID *uint64      `json:"assignedUserId,omitempty"`
}

// CreateTask creates a task and invalidates every cached task query.
func (c *Client) CreateTask(ctx context.Context, input CreateTaskInput) (Task, error) {
	var task Task
	err := c.mutate(ctx, http.MethodPost, "/tasks", input, &task, []Tag{
		{Type: TagTypeTasks},
	})
	return task, err
}

// UpdateTaskStatus changes a task's status and invalidates only the
// cached queries that included that task.
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID uint64, status TaskStatus) (Task, error) {
	body := map[string]TaskStatus{"status": status}

	var task Task
	path := fmt.Sprintf("/tasks/%d/status", taskID)
	err := c.mutate(ctx, http.MethodPatch, path, body, &task, []Tag{
		{Type: TagTypeTasks, ID: taskID},
	})
	return task, err
}

// DeleteTask removes a task and invalidates the cached queries that
// included it. The deleted record is returned.
func (c *Client) DeleteTask(ctx context.Context, taskID uint64) (Task, error) {
	var task Task
	path := fmt.Sprintf("/tasks/%d", taskID)
	err := c.mutate(ctx, http.MethodDelete, path, nil, &task, []Tag{
		{Type: TagTypeTasks, ID: taskID},
	})
	return task, err
}
