package models

import "time"

type Team struct {
	ID                   uint64    `gorm:"primarykey" json:"id"`
	TeamName             string    `gorm:"type:varchar(255);not null" json:"teamName"`
	ProductOwnerUserID   *uint64   `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID *uint64   `json:"projectManagerUserId,omitempty"`
	CreatedAt            time.Time `json:"-"`
	UpdatedAt            time.Time `json:"-"`

	// Relations
	Members []User `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
