package models

import (
	"time"

	"gorm.io/gorm"
)

type Attachment struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	FileURL      string         `gorm:"type:varchar(512);not null" json:"fileURL"`
	FileName     *string        `gorm:"type:varchar(255)" json:"fileName,omitempty"`
	TaskID       uint64         `gorm:"not null" json:"taskId"`
	UploadedByID uint64         `gorm:"not null" json:"uploadedById"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task       *Task `gorm:"foreignKey:TaskID" json:"-"`
	UploadedBy *User `gorm:"foreignKey:UploadedByID" json:"-"`
}
