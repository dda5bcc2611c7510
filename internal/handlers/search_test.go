package handlers

import (
	"encoding/json"
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

func setupSearchTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
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

	handler := NewSearchHandler(services.NewSearchService(repository.NewSearchRepository(db)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/search", handler.Search)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func seedSearchData(t *testing.T, db *gorm.DB) {
	t.Helper()

	user := &models.User{Username: "revamper", Email: "revamper@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.User{Username: "bystander", Email: "bystander@example.com", PasswordHash: "x"}).Error)

	desc := "Revamp the whole site"
	project := &models.Project{Name: "Website Revamp", Description: &desc}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&models.Project{Name: "Mobile App"}).Error)

	taskDesc := "revamp the hero section"
	require.NoError(t, db.Create(&models.Task{
		Title:        "Landing page",
		Description:  &taskDesc,
		ProjectID:    project.ID,
		AuthorUserID: user.ID,
		Status:       models.StatusToDo,
		Priority:     models.PriorityHigh,
	}).Error)
	require.NoError(t, db.Create(&models.Task{
		Title:        "Unrelated chore",
		ProjectID:    project.ID,
		AuthorUserID: user.ID,
		Status:       models.StatusToDo,
		Priority:     models.PriorityLow,
	}).Error)
}

func doSearch(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/search?query="+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchHandler_MatchesAcrossEntities(t *testing.T) {
	db, r := setupSearchTestEnv(t)
	seedSearchData(t, db)

	w := doSearch(t, r, "evamp")
	require.Equal(t, http.StatusOK, w.Code)

	var results services.SearchResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))

	// Substring matches: task description, project name, username
	require.Len(t, results.Tasks, 1)
	require.Equal(t, "Landing page", results.Tasks[0].Title)
	require.Len(t, results.Projects, 1)
	require.Equal(t, "Website Revamp", results.Projects[0].Name)
	require.Len(t, results.Users, 1)
	require.Equal(t, "revamper", results.Users[0].Username)
}

func TestSearchHandler_NoMatches(t *testing.T) {
	db, r := setupSearchTestEnv(t)
	seedSearchData(t, db)

	w := doSearch(t, r, "zzzzzz")
	require.Equal(t, http.StatusOK, w.Code)

	var results services.SearchResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Empty(t, results.Tasks)
	require.Empty(t, results.Projects)
	require.Empty(t, results.Users)
}

func TestSearchHandler_Idempotent(t *testing.T) {
	db, r := setupSearchTestEnv(t)
	seedSearchData(t, db)

	first := doSearch(t, r, "evamp")
	second := doSearch(t, r, "evamp")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	require.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	_, r := setupSearchTestEnv(t)

	w := doSearch(t, r, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
