package repository

import (
	"github.com/luanvr/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormSearchRepository is a GORM implementation of SearchRepository
type GormSearchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &GormSearchRepository{db: db}
}

// SearchTasks matches the query against task title and description
func (r *GormSearchRepository) SearchTasks(query string) ([]models.Task, error) {
	var tasks []models.Task
	pattern := "%" + query + "%"
	err := r.db.
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Preload("Author").
		Preload("Assignee").
		Preload("Attachments").
		Preload("Project").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchProjects matches the query against project name and description
func (r *GormSearchRepository) SearchProjects(query string) ([]models.Project, error) {
	var projects []models.Project
	pattern := "%" + query + "%"
	err := r.db.
		Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Preload("Tasks").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SearchUsers matches the query against usernames
func (r *GormSearchRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	if err := r.db.Where("username LIKE ?", pattern).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
