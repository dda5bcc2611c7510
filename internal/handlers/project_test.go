package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luanvr/project-management-api/internal/database"
	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/repository"
	"github.com/luanvr/project-management-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type projectTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
		&models.Attachment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	projectHandler := NewProjectHandler(services.NewProjectService(repository.NewProjectRepository(db)))
	taskHandler := NewTaskHandler(services.NewTaskService(repository.NewTaskRepository(db)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/projects", projectHandler.ListProjects)
	r.POST("/projects", projectHandler.CreateProject)
	r.DELETE("/projects/:projectId", projectHandler.DeleteProject)
	r.GET("/tasks", taskHandler.ListTasks)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return projectTestEnv{db: db, router: r}
}

func (env projectTestEnv) request(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_Create(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := env.request(t, http.MethodPost, "/projects", map[string]any{
		"name":        "Website Revamp",
		"description": "Refresh the marketing site",
		"startDate":   "2024-01-15",
		"endDate":     "2024-06-30",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, "Website Revamp", project.Name)
	require.NotNil(t, project.StartDate)
	require.NotNil(t, project.EndDate)
	require.True(t, project.Completed())
}

func TestProjectHandler_Create_MissingName(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := env.request(t, http.MethodPost, "/projects", map[string]any{
		"description": "nameless",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_List(t *testing.T) {
	env := setupProjectTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "One"}).Error)
	require.NoError(t, env.db.Create(&models.Project{Name: "Two"}).Error)

	w := env.request(t, http.MethodGet, "/projects", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
}

func TestProjectHandler_Delete_Cascades(t *testing.T) {
	env := setupProjectTestEnv(t)

	user := &models.User{Username: "author", Email: "author@example.com", PasswordHash: "x"}
	require.NoError(t, env.db.Create(user).Error)

	project := &models.Project{Name: "Doomed"}
	require.NoError(t, env.db.Create(project).Error)

	task := &models.Task{
		Title:        "Orphan-to-be",
		ProjectID:    project.ID,
		AuthorUserID: user.ID,
		Status:       models.StatusToDo,
		Priority:     models.PriorityLow,
	}
	require.NoError(t, env.db.Create(task).Error)
	require.NoError(t, env.db.Create(&models.Comment{Text: "bye", TaskID: task.ID, UserID: user.ID}).Error)
	require.NoError(t, env.db.Create(&models.Attachment{FileURL: "https://example.com/f.png", TaskID: task.ID, UploadedByID: user.ID}).Error)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	require.Equal(t, project.ID, deleted.ID)

	// The project is gone from listings
	list := env.request(t, http.MethodGet, "/projects", nil)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &projects))
	require.Empty(t, projects)

	// No task referencing the project is returned anymore
	tasks := env.request(t, http.MethodGet, fmt.Sprintf("/tasks?projectId=%d", project.ID), nil)
	var remaining []models.Task
	require.NoError(t, json.Unmarshal(tasks.Body.Bytes(), &remaining))
	require.Empty(t, remaining)

	// Comments and attachments followed the cascade
	var comments, attachments int64
	require.NoError(t, env.db.Model(&models.Comment{}).Where("task_id = ?", task.ID).Count(&comments).Error)
	require.NoError(t, env.db.Model(&models.Attachment{}).Where("task_id = ?", task.ID).Count(&attachments).Error)
	require.Zero(t, comments)
	require.Zero(t, attachments)
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := env.request(t, http.MethodDelete, "/projects/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
