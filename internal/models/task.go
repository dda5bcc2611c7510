package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	StatusToDo           TaskStatus = "To Do"
	StatusWorkInProgress TaskStatus = "Work In Progress"
	StatusUnderReview    TaskStatus = "Under Review"
	StatusCompleted      TaskStatus = "Completed"
)

// Valid reports whether s is one of the four known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusWorkInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow     TaskPriority = "Low"
	PriorityMedium  TaskPriority = "Medium"
	PriorityHigh    TaskPriority = "High"
	PriorityUrgent  TaskPriority = "Urgent"
	PriorityBacklog TaskPriority = "Backlog"
)

// Valid reports whether p is one of the five known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent, PriorityBacklog:
		return true
	}
	return false
}

type Task struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Description    *string        `gorm:"type:text" json:"description,omitempty"`
	Status         TaskStatus     `gorm:"type:varchar(30);not null;default:'To Do'" json:"status"`
	Priority       TaskPriority   `gorm:"type:varchar(20);not null;default:'Backlog'" json:"priority"`
	Tags           *string        `gorm:"type:varchar(512)" json:"tags,omitempty"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
	Points         *int           `json:"points,omitempty"`
	ProjectID      uint64         `gorm:"not null" json:"projectId"`
	AuthorUserID   uint64         `gorm:"not null" json:"authorUserId"`
	AssignedUserID *uint64        `json:"assignedUserId,omitempty"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Author      *User        `gorm:"foreignKey:AuthorUserID" json:"author,omitempty"`
	Assignee    *User        `gorm:"foreignKey:AssignedUserID" json:"assignee,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
}
