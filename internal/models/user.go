package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                uint64         `gorm:"primarykey" json:"userId"`
	Username          string         `gorm:"type:varchar(255);not null" json:"username"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash      string         `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePictureURL *string        `gorm:"type:varchar(512)" json:"profilePictureUrl,omitempty"`
	TeamID            *uint64        `json:"teamId,omitempty"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team          *Team  `gorm:"foreignKey:TeamID" json:"-"`
	AuthoredTasks []Task `gorm:"foreignKey:AuthorUserID" json:"-"`
	AssignedTasks []Task `gorm:"foreignKey:AssignedUserID" json:"-"`
}
