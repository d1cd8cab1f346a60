package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Store, cfg.Version)
	generate := NewGenerateController(cfg.Generator, cfg.TaskClient)
	historyController := NewHistoryController(cfg.History)
	templatesController := NewTemplatesController(cfg.Templates)

	// Health endpoints
	router.GET("/api/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Generation endpoints
	router.POST("/api/generate", generate.Generate)
	router.POST("/api/generate/stream", generate.GenerateStream)
	router.POST("/api/generate/async", generate.GenerateAsync)

	// Task status endpoint
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
	}

	// History endpoints
	router.GET("/api/history", historyController.List)
	router.GET("/api/history/:id", historyController.Get)

	// Template endpoints
	router.GET("/api/templates", templatesController.List)
	router.POST("/api/templates/apply", templatesController.Apply)

	return router
}
