package client

import "time"

// TaskStatus values accepted by the API.
type TaskStatus string

const (
	StatusToDo           TaskStatus = "To Do"
	StatusWorkInProgress TaskStatus = "Work In Progress"
	StatusUnderReview    TaskStatus = "Under Review"
	StatusCompleted      TaskStatus = "Completed"
)

// TaskPriority values accepted by the API.
type TaskPriority string

const (
	PriorityLow     TaskPriority = "Low"
	PriorityMedium  TaskPriority = "Medium"
	PriorityHigh    TaskPriority = "High"
	PriorityUrgent  TaskPriority = "Urgent"
	PriorityBacklog TaskPriority = "Backlog"
)

// User mirrors the user payload of the API. The password never appears on
// the wire.
type User struct {
	ID                uint64  `json:"userId"`
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	TeamID            *uint64 `json:"teamId,omitempty"`
}

// Project mirrors the project payload of the API.
type Project struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Tasks       []Task     `json:"tasks,omitempty"`
}

// Comment mirrors the comment payload of the API.
type Comment struct {
	ID     uint64 `json:"id"`
	Text   string `json:"text"`
	TaskID uint64 `json:"taskId"`
	UserID uint64 `json:"userId"`
}

// Attachment mirrors the attachment payload of the API.
type Attachment struct {
	ID           uint64  `json:"id"`
	FileURL      string  `json:"fileURL"`
	FileName     *string `json:"fileName,omitempty"`
	TaskID       uint64  `json:"taskId"`
	UploadedByID uint64  `json:"uploadedById"`
}

// Task mirrors the task payload of the API, including the related records
// the list endpoints preload.
type Task struct {
	ID             uint64       `json:"id"`
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	Tags           *string      `json:"tags,omitempty"`
	StartDate      *time.Time   `json:"startDate,omitempty"`
	DueDate        *time.Time   `json:"dueDate,omitempty"`
	Points         *int         `json:"points,omitempty"`
	ProjectID      uint64       `json:"projectId"`
	AuthorUserID   uint64       `json:"authorUserId"`
	AssignedUserID *uint64      `json:"assignedUserId,omitempty"`
	Project        *Project     `json:"project,omitempty"`
	Author         *User        `json:"author,omitempty"`
	Assignee       *User        `json:"assignee,omitempty"`
	Comments       []Comment    `json:"comments,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

// Team mirrors the enriched team payload of the teams endpoint.
type Team struct {
	ID                     uint64  `json:"id"`
	TeamName               string  `json:"teamName"`
	ProductOwnerUserID     *uint64 `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID   *uint64 `json:"projectManagerUserId,omitempty"`
	ProductOwnerUsername   *string `json:"productOwnerUsername,omitempty"`
	ProjectManagerUsername *string `json:"projectManagerUsername,omitempty"`
}

// SearchResults holds the three parallel result sets of a search.
type SearchResults struct {
	Tasks    []Task    `json:"tasks"`
	Projects []Project `json:"projects"`
	Users    []User    `json:"users"`
}
