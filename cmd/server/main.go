package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/luanvr/project-management-api/internal/config"
	"github.com/luanvr/project-management-api/internal/database"
	"github.com/luanvr/project-management-api/internal/handlers"
	"github.com/luanvr/project-management-api/internal/middleware"
	"github.com/luanvr/project-management-api/internal/repository"
	"github.com/luanvr/project-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.MigrateDatabase(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo)
	teamService := services.NewTeamService(teamRepo, userRepo)
	userService := services.NewUserService(userRepo)
	searchService := services.NewSearchService(searchRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	requireAuth := middleware.RequireAuth(tokenService, userRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Management API is running",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.GET("/me", requireAuth, authHandler.Me)
		auth.POST("/signout", requireAuth, authHandler.Signout)
	}

	// Project routes (protected)
	projects := r.Group("/projects")
	projects.Use(requireAuth)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PATCH("/:taskId/status", taskHandler.UpdateTaskStatus)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
		tasks.GET("/user/:userId", taskHandler.ListUserTasks)
	}

	// Team routes (protected)
	teams := r.Group("/teams")
	teams.Use(requireAuth)
	{
		teams.GET("", teamHandler.ListTeams)
	}

	// User routes (protected)
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:userId", userHandler.GetUser)
		users.PATCH("/:userId", userHandler.UpdateUser)
	}

	// Search route (protected)
	r.GET("/search", requireAuth, searchHandler.Search)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
